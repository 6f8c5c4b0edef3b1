package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"ripper/internal/media/ffprobe"
	"ripper/internal/services"
)

func newProbeCommand(cctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "probe <video>",
		Short: "Inspect container and stream metadata via ffprobe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.FFprobeBinary(), args[0])
			if err != nil {
				return services.Wrap(services.ErrExternalTool, "probe", "inspect", args[0], err)
			}

			if jsonOutput {
				return writeJSON(cmd, json.RawMessage(result.RawJSON()))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderProbeFormat(args[0], result))
			fmt.Fprintln(out, renderProbeStreams(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit raw ffprobe JSON")
	return cmd
}

func renderProbeFormat(path string, result ffprobe.Result) string {
	duration := "unknown"
	if seconds := result.DurationSeconds(); seconds > 0 {
		duration = fmt.Sprintf("%.2fs", seconds)
	}
	size := "unknown"
	if bytes := result.SizeBytes(); bytes > 0 {
		size = humanize.Bytes(uint64(bytes))
	}
	rows := [][]string{
		{"File", path},
		{"Container", result.Format.FormatName},
		{"Streams", fmt.Sprintf("%d", result.Format.NBStreams)},
		{"Duration", duration},
		{"Size", size},
	}
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

func renderProbeStreams(result ffprobe.Result) string {
	rows := make([][]string, 0, len(result.Streams))
	for _, stream := range result.Streams {
		dimensions := ""
		rate := ""
		frames := ""
		if strings.EqualFold(stream.CodecType, "video") {
			dimensions = fmt.Sprintf("%dx%d", stream.Width, stream.Height)
			if fps := stream.FrameRate(); fps > 0 {
				rate = fmt.Sprintf("%.3f", fps)
			}
			if count := stream.FrameCount(); count > 0 {
				frames = countPrinter.Sprintf("%d", count)
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", stream.Index),
			stream.CodecType,
			stream.CodecName,
			dimensions,
			rate,
			frames,
		})
	}
	return renderTable(
		[]string{"#", "Type", "Codec", "Resolution", "FPS", "Frames"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	)
}
