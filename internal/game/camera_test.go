package game

import "testing"

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name     string
		fbW, fbH int
		border   int
		want     Viewport
	}{
		{"default window", WindowWidth, WindowHeight, BorderThickness, Viewport{X: 1, Y: 1, W: 1280, H: 720}},
		{"no room for border", 1280, 720, 1, Viewport{X: 160, Y: 90, W: 960, H: 540}},
		{"density 4 window", GridWidth * 4, GridHeight * 4, 0, Viewport{W: 1280, H: 720}},
		{"smaller than grid", 200, 100, 1, Viewport{X: 13, Y: 1, W: 174, H: 98}},
		{"all border", 2, 2, 1, Viewport{}},
		{"zero", 0, 0, 0, Viewport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitViewport(tt.fbW, tt.fbH, tt.border); got != tt.want {
				t.Fatalf("FitViewport(%d, %d, %d) = %+v, want %+v", tt.fbW, tt.fbH, tt.border, got, tt.want)
			}
		})
	}
}

func TestWindowSize_KeepsDensity(t *testing.T) {
	for d := 1; d <= MaxDensity; d++ {
		w, h := WindowSize(d)
		vp := FitViewport(w, h, BorderThickness)
		want := Viewport{X: BorderThickness, Y: BorderThickness, W: GridWidth * d, H: GridHeight * d}
		if vp != want {
			t.Fatalf("density %d: window %dx%d drew %+v, want %+v", d, w, h, vp, want)
		}
	}
}
