package wplace

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"

	"github.com/vslashg/cornmunity-wplace/palette"
)

// NearestOptions adjusts the color snapping pipeline. The zero value snaps
// every pixel at the original size with no quantization.
type NearestOptions struct {
	// Overrides force exact source colors onto chosen palette colors,
	// bypassing the metric. Keys match the pixel values being snapped,
	// after any resize or quantization.
	Overrides map[palette.Color]palette.Color

	// MaxColors quantizes the image down before snapping, which tames
	// noisy sources like photographs. Zero skips quantization.
	MaxColors int

	// Width and Height resize the image before snapping. One of them may
	// be zero to preserve the aspect ratio.
	Width, Height int
}

// MapNearest snaps every pixel of img onto the palette, optionally
// resizing and quantizing it first. Fully transparent pixels become the
// fully transparent color whatever their other channels.
func (c *Converter) MapNearest(img image.Image, o NearestOptions) (*image.NRGBA, error) {
	if o.Width < 0 || o.Height < 0 || o.MaxColors < 0 {
		return nil, errors.New("wplace: nearest options must not be negative")
	}

	if o.Width > 0 || o.Height > 0 {
		// Nearest neighbor keeps pixel art edges hard.
		g := gift.New(gift.Resize(o.Width, o.Height, gift.NearestNeighborResampling))
		resized := image.NewNRGBA(g.Bounds(img.Bounds()))
		g.Draw(resized, img)
		img = resized
	}

	if o.MaxColors > 0 {
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		pm := image.NewPaletted(img.Bounds(), q.Quantize(make(color.Palette, 0, o.MaxColors), img))
		draw.Draw(pm, pm.Rect, img, img.Bounds().Min, draw.Src)
		img = pm
	}

	src := toNRGBA(img)
	out := image.NewNRGBA(src.Rect)
	for y := 0; y < src.Rect.Dy(); y++ {
		for x := 0; x < src.Rect.Dx(); x++ {
			n := src.NRGBAAt(x, y)
			col := palette.RGBA(n.R, n.G, n.B, n.A)
			snapped, ok := o.Overrides[col]
			if !ok {
				snapped = c.pal.Nearest(col)
			}
			out.SetNRGBA(x, y, snapped.NRGBA())
		}
	}

	return out, nil
}

// Nearest reads the image at in, snaps it onto the palette and writes the
// result to out as a PNG.
func (c *Converter) Nearest(in, out string, o NearestOptions) error {
	img, err := DecodeImage(in)
	if err != nil {
		return err
	}

	m, err := c.MapNearest(img, o)
	if err != nil {
		return err
	}

	c.logger.Printf("Snapped %dx%d image from \"%s\"\n", m.Rect.Dx(), m.Rect.Dy(), in)

	return WritePNG(out, m)
}
