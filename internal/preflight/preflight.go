package preflight

import (
	"context"

	"ripper/internal/deps"
	"ripper/internal/services"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// Params carries the operator inputs validated before a run starts.
type Params struct {
	VideoPath     string
	OutputDir     string
	Color         string
	Tolerance     int
	TargetFPS     int
	Feather       int
	FFprobeBinary string
}

// RunAll executes every preflight check for the given parameters, including
// the optional ffprobe availability probe.
func RunAll(ctx context.Context, params Params) []Result {
	results := []Result{
		CheckVideoFile(params.VideoPath),
		CheckOutputDir(params.OutputDir),
		CheckColor(params.Color),
		CheckTolerance(params.Tolerance),
		CheckTargetFPS(params.TargetFPS),
		CheckFeather(params.Feather),
	}

	probe := deps.CheckFFprobe(params.FFprobeBinary)
	detail := probe.Command
	if !probe.Available {
		detail = probe.Detail
	}
	results = append(results, Result{
		Name:     probe.Name,
		Passed:   probe.Available,
		Optional: true,
		Detail:   detail,
	})

	return results
}

// Validate runs the required checks and fails on the first one that does not
// pass. Failures are classified as validation errors so the run aborts before
// the video is opened.
func Validate(ctx context.Context, params Params) error {
	checks := []Result{
		CheckTolerance(params.Tolerance),
		CheckTargetFPS(params.TargetFPS),
		CheckFeather(params.Feather),
		CheckColor(params.Color),
		CheckVideoFile(params.VideoPath),
		CheckOutputDir(params.OutputDir),
	}
	for _, check := range checks {
		if !check.Passed {
			return services.Wrap(services.ErrValidation, "preflight", check.Name, check.Detail, nil)
		}
	}
	return nil
}

// Passed reports whether every required check in results passed.
func Passed(results []Result) bool {
	for _, result := range results {
		if !result.Passed && !result.Optional {
			return false
		}
	}
	return true
}
