package capture

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

// openVideoCapture is a seam so tests can stub the OpenCV open call.
var openVideoCapture = func(path string) (*gocv.VideoCapture, error) {
	return gocv.OpenVideoCapture(path)
}

// Source is a sequential decoder over a video file. It is owned exclusively
// by one run for its duration; there is no concurrent reader.
type Source struct {
	path   string
	vc     *gocv.VideoCapture
	closed bool
}

// Open opens the video at path for sequential decoding.
func Open(path string) (*Source, error) {
	vc, err := openVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("open video %q: %w", path, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("open video %q: unreadable or unsupported container", path)
	}
	return &Source{path: path, vc: vc}, nil
}

// Path returns the path the source was opened from.
func (s *Source) Path() string {
	return s.path
}

// FPS reports the native frame rate, or 0 when the container does not expose one.
func (s *Source) FPS() float64 {
	fps := s.vc.Get(gocv.VideoCaptureFPS)
	if math.IsNaN(fps) || fps < 0 {
		return 0
	}
	return fps
}

// FrameCount reports the total number of frames, or 0 when unknown.
func (s *Source) FrameCount() int {
	count := s.vc.Get(gocv.VideoCaptureFrameCount)
	if math.IsNaN(count) || count < 0 {
		return 0
	}
	return int(count)
}

// Width reports the frame width in pixels.
func (s *Source) Width() int {
	return int(s.vc.Get(gocv.VideoCaptureFrameWidth))
}

// Height reports the frame height in pixels.
func (s *Source) Height() int {
	return int(s.vc.Get(gocv.VideoCaptureFrameHeight))
}

// Duration reports the video length in seconds, or 0 when the frame rate is unknown.
func (s *Source) Duration() float64 {
	fps := s.FPS()
	if fps <= 0 {
		return 0
	}
	return float64(s.FrameCount()) / fps
}

// Read decodes the next BGR frame into mat, returning false when the source
// is exhausted or the decoded frame is empty.
func (s *Source) Read(mat *gocv.Mat) bool {
	if s.closed {
		return false
	}
	if !s.vc.Read(mat) {
		return false
	}
	return !mat.Empty()
}

// Close releases the decoder. It is safe to call more than once.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.vc.Close()
}
