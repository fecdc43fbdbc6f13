package assets

import (
	"image"
	"image/color"
	"testing"

	"SavingMerica/internal/config"
)

func TestApplyColorKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.White)
	src.Set(1, 0, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	src.Set(0, 1, color.Black)
	src.Set(1, 1, color.White)

	out := applyColorKey(src, config.RGB{R: 255, G: 255, B: 255})

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{}},
		{1, 0, color.NRGBA{R: 200, G: 10, B: 10, A: 255}},
		{0, 1, color.NRGBA{A: 255}},
		{1, 1, color.NRGBA{}},
	}
	for _, tt := range tests {
		if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if src.RGBAAt(0, 0) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("source image was modified")
	}
}

func TestApplyColorKeyKeepsBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(3, 4, 10, 8))
	out := applyColorKey(src, config.RGB{})
	if out.Bounds() != src.Bounds() {
		t.Errorf("bounds = %v, want %v", out.Bounds(), src.Bounds())
	}
	// transparent black source pixels stay transparent
	if got := out.NRGBAAt(5, 5); got != (color.NRGBA{}) {
		t.Errorf("pixel = %v, want transparent", got)
	}
}
