package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"ripper/internal/chromakey"
	"ripper/internal/extraction"
	"ripper/internal/logging"
	"ripper/internal/preflight"
	"ripper/internal/services"
)

func runExtract(cmd *cobra.Command, cctx *commandContext, flags *extractFlags, videoArg, outputArg, logLevel, logFormat string, quiet bool) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if strings.TrimSpace(logLevel) != "" {
		level = logLevel
	}
	format := cfg.Logging.Format
	if strings.TrimSpace(logFormat) != "" {
		format = logFormat
	}
	logger, err := logging.New(logging.Options{Level: level, Format: format, Writer: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	params := flags.resolve(cmd, cfg)

	runID := uuid.NewString()
	ctx := services.WithRunID(cmd.Context(), runID)
	ctx = services.WithVideo(ctx, videoArg)
	runLogger := logging.WithContext(ctx, logger)

	if err := preflight.Validate(ctx, preflight.Params{
		VideoPath:     videoArg,
		OutputDir:     outputArg,
		Color:         params.color,
		Tolerance:     params.tolerance,
		TargetFPS:     params.fps,
		Feather:       params.feather,
		FFprobeBinary: cfg.FFprobeBinary(),
	}); err != nil {
		return err
	}

	color, err := chromakey.ParseColor(params.color)
	if err != nil {
		return services.Wrap(services.ErrValidation, "cli", "parse color", "", err)
	}

	extractor := extraction.New(extraction.Options{
		VideoPath: videoArg,
		OutputDir: outputArg,
		Key:       chromakey.Key{Color: color, Tolerance: params.tolerance},
		Feather:   params.feather,
		TargetFPS: params.fps,
	}, runLogger)

	out := cmd.OutOrStdout()
	showUX := !quiet && isTerminal(out)

	var bar *progressbar.ProgressBar
	extractor.SetOnOpen(func(stats extraction.Stats) {
		if !showUX {
			return
		}
		fmt.Fprintln(out, renderVideoInfo(videoArg, params, stats))
		bar = newFrameBar(stats.FrameCount)
	})
	extractor.SetProgress(func(framesRead, framesSaved int) {
		if bar != nil {
			_ = bar.Set(framesRead)
		}
	})

	stats, err := extractor.Run(ctx)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	if showUX {
		fmt.Fprintln(out, renderRunSummary(outputArg, runID, stats))
	}
	return nil
}
