package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevel string
	var logFormat string
	var quiet bool

	ctx := newCommandContext(&configFlag)
	flags := &extractFlags{}

	rootCmd := &cobra.Command{
		Use:   "ripper <video> <output>",
		Short: "Extract video frames as transparent PNGs",
		Long: `ripper samples frames from a video at a target rate, removes a background
key color from each sampled frame, and writes the results as numbered RGBA
PNG files (frame_0000.png, frame_0001.png, ...) in the output directory.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, ctx, flags, args[0], args[1], logLevel, logFormat, quiet)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (console or json)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress tables and progress output")
	flags.register(rootCmd)

	rootCmd.AddCommand(newProbeCommand(ctx))
	rootCmd.AddCommand(newPreflightCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
