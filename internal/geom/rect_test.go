package geom

import "testing"

func TestIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 50, Y: 50, W: 5, H: 5}, false},
		{"empty", Rect{X: 1, Y: 1, W: 0, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	screen := Rect{W: 800, H: 600}
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside untouched", Rect{X: 10, Y: 20, W: 50, H: 40}, Rect{X: 10, Y: 20, W: 50, H: 40}},
		{"past left top", Rect{X: -5, Y: -9, W: 50, H: 40}, Rect{X: 0, Y: 0, W: 50, H: 40}},
		{"past right bottom", Rect{X: 790, Y: 590, W: 50, H: 40}, Rect{X: 750, Y: 560, W: 50, H: 40}},
		{"wider than bounds", Rect{X: 3, Y: 0, W: 1000, H: 40}, Rect{X: -100, Y: 0, W: 1000, H: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(screen); got != tt.want {
				t.Errorf("Clamp = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromCenter(t *testing.T) {
	r := FromCenter(100, 50, 20, 10)
	if r.X != 90 || r.Y != 45 {
		t.Fatalf("FromCenter top-left = (%v,%v), want (90,45)", r.X, r.Y)
	}
	if cx, cy := r.Center(); cx != 100 || cy != 50 {
		t.Errorf("Center = (%v,%v), want (100,50)", cx, cy)
	}
}

func TestFromCenterOddSize(t *testing.T) {
	r := FromCenter(100, 50, 21, 7)
	if r.X != 90 || r.Y != 47 {
		t.Fatalf("FromCenter top-left = (%v,%v), want (90,47)", r.X, r.Y)
	}
	if cx, cy := r.Center(); cx != 100 || cy != 50 {
		t.Errorf("Center = (%v,%v), want (100,50)", cx, cy)
	}
}
