package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // JPEG captures
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// A4 page size in millimetres.
const (
	A4WidthMM  = 210.0
	A4HeightMM = 297.0
)

// Limits on the decoded size of a capture.
const (
	MaxRasterSide   = 20000
	MaxRasterPixels = 100_000_000
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage    = errors.New("image has no pixels")
	// ErrImageTooLarge is returned for images beyond MaxRasterSide or MaxRasterPixels.
	ErrImageTooLarge = errors.New("image too large")
)

// pageSlicePx is the image height, in pixels, that fills one A4 page once
// the image is scaled to the page width.
func pageSlicePx(width int) int {
	slice := int(math.Floor(A4HeightMM * float64(width) / A4WidthMM))
	if slice < 1 {
		slice = 1
	}
	return slice
}

// RasterPages returns how many A4 pages an image of the given pixel size
// needs once scaled to the page width.
func RasterPages(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	slice := pageSlicePx(width)
	return (height + slice - 1) / slice
}

// RasterToPDF converts a captured page image (PNG or JPEG) into a PDF. The
// image is scaled to the A4 width and cut into page-height slices, one per
// page. Returns the PDF bytes and the page count.
func RasterToPDF(data []byte) ([]byte, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, 0, ErrEmptyImage
	}
	if cfg.Width > MaxRasterSide || cfg.Height > MaxRasterSide || cfg.Width*cfg.Height > MaxRasterPixels {
		return nil, 0, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, 0, ErrEmptyImage
	}

	mmPerPx := A4WidthMM / float64(bounds.Dx())
	slicePx := pageSlicePx(bounds.Dx())
	pages := RasterPages(bounds.Dx(), bounds.Dy())

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for i := 0; i < pages; i++ {
		top := bounds.Min.Y + i*slicePx
		bottom := top + slicePx
		if bottom > bounds.Max.Y {
			bottom = bounds.Max.Y
		}
		rect := image.Rect(bounds.Min.X, top, bounds.Max.X, bottom)

		slice := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
		draw.Draw(slice, slice.Bounds(), img, rect.Min, draw.Src)

		var buf bytes.Buffer
		if err := png.Encode(&buf, slice); err != nil {
			return nil, 0, fmt.Errorf("encode page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, A4WidthMM, float64(rect.Dy())*mmPerPx, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, 0, fmt.Errorf("render pdf: %w", err)
	}
	return out.Bytes(), pages, nil
}
