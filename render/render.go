// Package render draws a packed Bin to a PNG for visual inspection. It is a
// pure reader of pack.Bin/pack.Item — it never mutates placement state,
// mirroring items_type.py's Bin.visualize (red for rotated items, blue for
// non-rotated, item IDs as labels).
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"binpack/pack"
)

var (
	rotatedColor    = color.NRGBA{220, 60, 60, 255}
	nonRotatedColor = color.NRGBA{60, 100, 220, 255}
	borderColor     = color.NRGBA{0, 0, 0, 255}
	backgroundColor = color.NRGBA{255, 255, 255, 255}
)

// scale enlarges each bin unit to this many pixels so item ID labels remain
// legible even for small bins.
const scale = 4

// RenderBin draws a single bin's packed items to an NRGBA image.
func RenderBin(bin *pack.Bin) *image.NRGBA {
	img := imaging.New(bin.Width*scale, bin.Height*scale, backgroundColor)
	for _, it := range bin.Items {
		drawItem(img, it)
	}
	return img
}

// RenderBins draws every bin to its own PNG file under dir, named
// "bin-0.png", "bin-1.png", and so on.
func RenderBins(bins []*pack.Bin, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: mkdir %s: %w", dir, err)
	}
	for i, bin := range bins {
		img := RenderBin(bin)
		path := fmt.Sprintf("%s/bin-%d.png", dir, i)
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("render: save %s: %w", path, err)
		}
	}
	return nil
}

func drawItem(img *image.NRGBA, it *pack.Item) {
	fill := nonRotatedColor
	if it.Rotated {
		fill = rotatedColor
	}
	rect := image.Rect(it.X*scale, it.Y*scale, (it.X+it.Width)*scale, (it.Y+it.Height)*scale)
	draw.Draw(img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	drawBorder(img, rect)
	drawLabel(img, rect, it.ID)
}

func drawBorder(img *image.NRGBA, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, borderColor)
		img.Set(x, r.Max.Y-1, borderColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, borderColor)
		img.Set(r.Max.X-1, y, borderColor)
	}
}

func drawLabel(img *image.NRGBA, r image.Rectangle, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(borderColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(r.Min.X+3, r.Min.Y+13),
	}
	d.DrawString(label)
}
