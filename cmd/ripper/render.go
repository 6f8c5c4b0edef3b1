package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ripper/internal/extraction"
)

var countPrinter = message.NewPrinter(language.English)

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newFrameBar(total int) *progressbar.ProgressBar {
	if total <= 0 {
		// Unknown frame count renders as a spinner.
		total = -1
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func renderVideoInfo(videoPath string, params extractFlags, stats extraction.Stats) string {
	rows := [][]string{
		{"Video", videoPath},
		{"Resolution", fmt.Sprintf("%dx%d", stats.Width, stats.Height)},
		{"Native fps", fmt.Sprintf("%.3f", stats.NativeFPS)},
		{"Total frames", countPrinter.Sprintf("%d", stats.FrameCount)},
		{"Duration", fmt.Sprintf("%.2fs", stats.Duration)},
		{"Target fps", fmt.Sprintf("%d", params.fps)},
		{"Frame interval", fmt.Sprintf("%.3f", stats.FrameInterval)},
		{"Expected frames", countPrinter.Sprintf("%d", stats.ExpectedFrames)},
		{"Key color", params.color},
		{"Tolerance", fmt.Sprintf("%d", params.tolerance)},
		{"Feather", fmt.Sprintf("%d px", params.feather)},
	}
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

func renderRunSummary(outputDir, runID string, stats extraction.Stats) string {
	rows := [][]string{
		{"Frames read", countPrinter.Sprintf("%d", stats.FramesRead)},
		{"Frames saved", countPrinter.Sprintf("%d", stats.FramesSaved)},
		{"Expected frames", countPrinter.Sprintf("%d", stats.ExpectedFrames)},
		{"Achieved fps", fmt.Sprintf("%.3f", stats.AchievedFPS)},
		{"Elapsed", stats.Elapsed.Round(time.Millisecond).String()},
		{"Output size", humanize.Bytes(uint64(stats.OutputBytes))},
		{"Output directory", outputDir},
		{"Run", runID},
	}
	return renderTable([]string{"Result", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}
