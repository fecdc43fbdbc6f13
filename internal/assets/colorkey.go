package assets

import (
	"image"
	"image/color"
	"image/draw"

	"SavingMerica/internal/config"
)

// applyColorKey returns a copy of src where every pixel of the key color is
// fully transparent.
func applyColorKey(src image.Image, key config.RGB) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			if c.R == key.R && c.G == key.G && c.B == key.B {
				dst.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return dst
}
