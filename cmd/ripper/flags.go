package main

import (
	"github.com/spf13/cobra"

	"ripper/internal/config"
)

// extractFlags holds the key-color parameters shared by the root and
// preflight commands. Config defaults apply only when a flag was not given.
type extractFlags struct {
	color     string
	tolerance int
	feather   int
	fps       int
}

func (f *extractFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.color, "color", "c", "", "Background key color, #RRGGBB or R,G,B (required)")
	cmd.Flags().IntVarP(&f.tolerance, "tolerance", "t", 30, "Per-channel tolerance around the key color (0-255)")
	cmd.Flags().IntVarP(&f.fps, "fps", "f", 12, "Target output frame rate")
	cmd.Flags().IntVar(&f.feather, "feather", 2, "Mask edge blur radius in pixels (0 keeps the mask binary)")
}

func (f *extractFlags) resolve(cmd *cobra.Command, cfg *config.Config) extractFlags {
	resolved := *f
	if cfg == nil {
		return resolved
	}
	if !cmd.Flags().Changed("color") && resolved.color == "" {
		resolved.color = cfg.Defaults.Color
	}
	if !cmd.Flags().Changed("tolerance") {
		resolved.tolerance = cfg.Defaults.Tolerance
	}
	if !cmd.Flags().Changed("fps") {
		resolved.fps = cfg.Defaults.FPS
	}
	if !cmd.Flags().Changed("feather") {
		resolved.feather = cfg.Defaults.Feather
	}
	return resolved
}
