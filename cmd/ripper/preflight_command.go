package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ripper/internal/preflight"
	"ripper/internal/services"
)

func newPreflightCommand(cctx *commandContext) *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "preflight <video> <output>",
		Short: "Run the pre-run checks without extracting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			params := flags.resolve(cmd, cfg)

			results := preflight.RunAll(cmd.Context(), preflight.Params{
				VideoPath:     args[0],
				OutputDir:     args[1],
				Color:         params.color,
				Tolerance:     params.tolerance,
				TargetFPS:     params.fps,
				Feather:       params.feather,
				FFprobeBinary: cfg.FFprobeBinary(),
			})

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				status := "FAIL"
				switch {
				case result.Passed:
					status = "OK"
				case result.Optional:
					status = "SKIP"
				}
				rows = append(rows, []string{result.Name, status, result.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if !preflight.Passed(results) {
				return services.Wrap(services.ErrValidation, "preflight", "run", "one or more required checks failed", nil)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
