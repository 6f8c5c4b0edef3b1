package services

import (
	"context"
	"strings"
)

type contextKey string

const (
	runIDContextKey contextKey = "run_id"
	videoContextKey contextKey = "video"
)

// WithRunID attaches a run identifier to the context for structured logging.
func WithRunID(ctx context.Context, runID string) context.Context {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDContextKey, runID)
}

// RunIDFromContext extracts the run identifier when present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(runIDContextKey).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// WithVideo attaches the input video path to the context for structured logging.
func WithVideo(ctx context.Context, path string) context.Context {
	path = strings.TrimSpace(path)
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, videoContextKey, path)
}

// VideoFromContext extracts the input video path when present.
func VideoFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(videoContextKey).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
