// Package icon composes the receipt launcher mark and rasterizes it to PNG.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RenderError reports a failed vector-to-raster conversion.
type RenderError struct {
	Size int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %dx%d icon: %v", e.Size, e.Size, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Kind names the error class for diagnostics.
func (e *RenderError) Kind() string { return "RenderError" }

// Draw rasterizes the mark into a size×size RGBA image.
func Draw(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, &RenderError{Size: size, Err: errors.New("size must be positive")}
	}
	mark, err := oksvg.ReadIconStream(bytes.NewReader(SVG(size)), oksvg.StrictErrorMode)
	if err != nil {
		return nil, &RenderError{Size: size, Err: fmt.Errorf("parse svg: %w", err)}
	}
	mark.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	mark.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// Render returns the PNG encoding of the mark at the given edge length.
// The round launcher variant uses the same bytes since the mark is circular.
func Render(size int) ([]byte, error) {
	img, err := Draw(size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &RenderError{Size: size, Err: fmt.Errorf("encode png: %w", err)}
	}
	return buf.Bytes(), nil
}
