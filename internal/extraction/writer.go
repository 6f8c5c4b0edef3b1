package extraction

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"gocv.io/x/gocv"
)

// composite converts a decoded BGR frame to display RGB order and appends the
// mask as the alpha channel.
func composite(frame gocv.Mat, mask gocv.Mat) (*image.NRGBA, error) {
	if frame.Empty() || mask.Empty() {
		return nil, errors.New("composite: empty input")
	}
	if frame.Rows() != mask.Rows() || frame.Cols() != mask.Cols() {
		return nil, fmt.Errorf("composite: frame %dx%d and mask %dx%d differ", frame.Cols(), frame.Rows(), mask.Cols(), mask.Rows())
	}

	rgb := gocv.NewMat()
	gocv.CvtColor(frame, &rgb, gocv.ColorBGRToRGB)
	defer rgb.Close()

	width := frame.Cols()
	height := frame.Rows()
	pixels := rgb.ToBytes()
	alpha := mask.ToBytes()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = pixels[i*3+0]
		img.Pix[i*4+1] = pixels[i*3+1]
		img.Pix[i*4+2] = pixels[i*3+2]
		img.Pix[i*4+3] = alpha[i]
	}
	return img, nil
}

// writeFramePNG composites frame and mask and writes the result losslessly to
// path, returning the number of bytes written.
func writeFramePNG(path string, frame gocv.Mat, mask gocv.Mat) (int64, error) {
	img, err := composite(frame, mask)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return 0, err
	}
	if err := file.Close(); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
