package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gocv.io/x/gocv"

	"ripper/internal/chromakey"
	"ripper/internal/logging"
	"ripper/internal/media/capture"
	"ripper/internal/sampling"
	"ripper/internal/services"
)

// lockFileName is the run-scoped lock created inside the output directory so
// two concurrent runs cannot interleave their frame numbering. The file
// carries no data; a stale unlocked file is ignored by the next run.
const lockFileName = ".ripper.lock"

// Options configures one extraction run.
type Options struct {
	VideoPath string
	OutputDir string
	Key       chromakey.Key
	Feather   int
	TargetFPS int
}

// Stats summarizes a completed run.
type Stats struct {
	FramesRead  int
	FramesSaved int
	Width       int
	Height      int
	NativeFPS   float64
	FrameCount  int
	Duration    float64
	// FrameInterval and ExpectedFrames are reporting-only figures derived by
	// straight division. The loop itself is driven by the sampling
	// accumulator, so ExpectedFrames may differ from FramesSaved by one at
	// duration boundaries; the two are never reconciled.
	FrameInterval  float64
	ExpectedFrames int
	AchievedFPS    float64
	Elapsed        time.Duration
	OutputBytes    int64
}

// ProgressFunc is invoked once per decoded frame with running counters.
type ProgressFunc func(framesRead, framesSaved int)

type runState int

const (
	stateIdle runState = iota
	stateOpened
	stateStreaming
	stateDone
	stateFailed
)

// Extractor performs a single sequential decode-mask-write pass over a video.
type Extractor struct {
	opts     Options
	logger   *slog.Logger
	onOpen   func(Stats)
	progress ProgressFunc
	state    runState
}

// New builds an Extractor. A nil logger is replaced with a no-op logger.
func New(opts Options, logger *slog.Logger) *Extractor {
	return &Extractor{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "extractor"),
		state:  stateIdle,
	}
}

// SetOnOpen installs an observer invoked once after the source metadata is
// read, before the first frame is decoded. Observability only.
func (e *Extractor) SetOnOpen(fn func(Stats)) {
	e.onOpen = fn
}

// SetProgress installs an observer called once per decoded frame. Observability
// only; it has no effect on outputs.
func (e *Extractor) SetProgress(fn ProgressFunc) {
	e.progress = fn
}

// Run executes the extraction pass: open the source, sample frames through the
// leaky accumulator, mask and composite each sampled frame, and write it as a
// numbered RGBA PNG. The source is released on every exit path before the
// result is reported. Already-written frames stay on disk when the run fails.
func (e *Extractor) Run(ctx context.Context) (Stats, error) {
	if e.opts.TargetFPS <= 0 {
		return Stats{}, services.Wrap(services.ErrValidation, "extractor", "run", fmt.Sprintf("target fps must be positive, got %d", e.opts.TargetFPS), nil)
	}
	if e.opts.Feather < 0 {
		return Stats{}, services.Wrap(services.ErrValidation, "extractor", "run", fmt.Sprintf("feather must not be negative, got %d", e.opts.Feather), nil)
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		e.state = stateFailed
		return Stats{}, services.Wrap(services.ErrProcessing, "extractor", "create output directory", e.opts.OutputDir, err)
	}

	lock := flock.New(filepath.Join(e.opts.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		e.state = stateFailed
		return Stats{}, services.Wrap(services.ErrProcessing, "extractor", "acquire output lock", lock.Path(), err)
	}
	if !locked {
		e.state = stateFailed
		return Stats{}, services.Wrap(services.ErrProcessing, "extractor", "acquire output lock", "another run owns this output directory", nil)
	}
	defer lock.Unlock()

	source, err := capture.Open(e.opts.VideoPath)
	if err != nil {
		e.state = stateFailed
		return Stats{}, services.Wrap(services.ErrSourceOpen, "extractor", "open video", "", err)
	}
	defer source.Close()
	e.state = stateOpened

	nativeFPS := source.FPS()
	if nativeFPS <= 0 {
		e.state = stateFailed
		return Stats{}, services.Wrap(services.ErrSourceOpen, "extractor", "open video", fmt.Sprintf("%s reports no native frame rate", e.opts.VideoPath), nil)
	}

	stats := Stats{
		Width:      source.Width(),
		Height:     source.Height(),
		NativeFPS:  nativeFPS,
		FrameCount: source.FrameCount(),
		Duration:   source.Duration(),
	}
	stats.FrameInterval = nativeFPS / float64(e.opts.TargetFPS)
	stats.ExpectedFrames = int(stats.Duration * float64(e.opts.TargetFPS))

	scheduler, err := sampling.NewScheduler(nativeFPS, float64(e.opts.TargetFPS))
	if err != nil {
		e.state = stateFailed
		return Stats{}, services.Wrap(services.ErrValidation, "extractor", "schedule sampling", "", err)
	}

	e.logger.Info("extraction started",
		logging.String("video", e.opts.VideoPath),
		logging.String("output", e.opts.OutputDir),
		logging.Float64("native_fps", nativeFPS),
		logging.Int("total_frames", stats.FrameCount),
		logging.Float64("duration_s", stats.Duration),
		logging.Float64("frame_interval", stats.FrameInterval),
		logging.Int("expected_frames", stats.ExpectedFrames),
		logging.Int("target_fps", e.opts.TargetFPS),
		logging.Int("feather", e.opts.Feather),
	)

	if e.onOpen != nil {
		e.onOpen(stats)
	}

	builder := chromakey.NewMaskBuilder(e.opts.Key, e.opts.Feather)
	started := time.Now()
	e.state = stateStreaming

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		select {
		case <-ctx.Done():
			e.state = stateFailed
			return stats, services.Wrap(services.ErrProcessing, "extractor", "stream", "run cancelled", ctx.Err())
		default:
		}

		if !source.Read(&frame) {
			break
		}
		emit := scheduler.ShouldEmit(stats.FramesRead)
		stats.FramesRead++

		if emit {
			written, err := e.saveFrame(builder, frame, stats.FramesSaved)
			if err != nil {
				e.state = stateFailed
				return stats, err
			}
			stats.OutputBytes += written
			stats.FramesSaved++
			if stats.FramesSaved%10 == 0 {
				e.logger.Info("extraction progress",
					logging.Int("frames_read", stats.FramesRead),
					logging.Int("frames_saved", stats.FramesSaved),
				)
			}
		}

		if e.progress != nil {
			e.progress(stats.FramesRead, stats.FramesSaved)
		}
	}

	stats.Elapsed = time.Since(started)
	if stats.Duration > 0 {
		stats.AchievedFPS = float64(stats.FramesSaved) / stats.Duration
	}
	e.state = stateDone

	e.logger.Info("extraction finished",
		logging.Int("frames_read", stats.FramesRead),
		logging.Int("frames_saved", stats.FramesSaved),
		logging.Float64("achieved_fps", stats.AchievedFPS),
		logging.Int64("output_bytes", stats.OutputBytes),
		logging.Duration("elapsed", stats.Elapsed),
	)
	return stats, nil
}

func (e *Extractor) saveFrame(builder chromakey.MaskBuilder, frame gocv.Mat, saved int) (int64, error) {
	mask, err := builder.Build(frame)
	if err != nil {
		return 0, services.Wrap(services.ErrProcessing, "extractor", "build mask", fmt.Sprintf("frame %d", saved), err)
	}
	defer mask.Close()

	name := fmt.Sprintf("frame_%04d.png", saved)
	path := filepath.Join(e.opts.OutputDir, name)
	written, err := writeFramePNG(path, frame, mask)
	if err != nil {
		return 0, services.Wrap(services.ErrProcessing, "extractor", "write frame", name, err)
	}
	return written, nil
}
