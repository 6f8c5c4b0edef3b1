package chromakey

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

// MaskBuilder derives a single-channel alpha mask from a decoded BGR frame.
// The mask is 255 where the pixel is foreground and 0 where all three channels
// fall inside the key's inclusion band. A feather radius above zero softens
// the mask edge into an alpha gradient; at zero the mask stays binary.
type MaskBuilder struct {
	lower   gocv.Scalar
	upper   gocv.Scalar
	feather int
}

// NewMaskBuilder builds a MaskBuilder for the given key and feather radius.
// The key bounds are translated into the frame's BGR channel order once here.
func NewMaskBuilder(key Key, feather int) MaskBuilder {
	lower, upper := key.Bounds()
	return MaskBuilder{
		lower:   gocv.NewScalar(float64(lower.B), float64(lower.G), float64(lower.R), 0),
		upper:   gocv.NewScalar(float64(upper.B), float64(upper.G), float64(upper.R), 0),
		feather: feather,
	}
}

// Feather reports the configured feather radius in pixels.
func (b MaskBuilder) Feather() int {
	return b.feather
}

// Build computes the alpha mask for one frame. It is a pure function of the
// frame and the builder's configuration; the caller owns the returned Mat and
// must Close it.
func (b MaskBuilder) Build(frame gocv.Mat) (gocv.Mat, error) {
	if frame.Empty() {
		return gocv.Mat{}, errors.New("mask build: empty frame")
	}

	background := gocv.NewMat()
	gocv.InRangeWithScalar(frame, b.lower, b.upper, &background)

	mask := gocv.NewMat()
	gocv.BitwiseNot(background, &mask)
	background.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()

	// Close fills small holes in the foreground, open drops speckles.
	closed := gocv.NewMat()
	gocv.MorphologyEx(mask, &closed, gocv.MorphClose, kernel)
	mask.Close()

	opened := gocv.NewMat()
	gocv.MorphologyEx(closed, &opened, gocv.MorphOpen, kernel)
	closed.Close()

	if b.feather <= 0 {
		return opened, nil
	}

	size := 2*b.feather + 1
	blurred := gocv.NewMat()
	gocv.GaussianBlur(opened, &blurred, image.Pt(size, size), 0, 0, gocv.BorderDefault)
	opened.Close()
	return blurred, nil
}
