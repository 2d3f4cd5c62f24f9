package game

// Viewport is a framebuffer rectangle in pixels, origin bottom-left as GL expects.
type Viewport struct {
	X, Y, W, H int
}

// FitViewport fits the whole grid inside a fbW x fbH framebuffer, keeping
// square cells and leaving border pixels free on every side. The result is
// centred. It returns a zero viewport when nothing fits.
func FitViewport(fbW, fbH, border int) Viewport {
	availW := fbW - 2*border
	availH := fbH - 2*border
	if availW <= 0 || availH <= 0 {
		return Viewport{}
	}
	// Integer scale keeps every cell the same size on screen.
	scale := min(availW/GridWidth, availH/GridHeight)
	w, h := GridWidth*scale, GridHeight*scale
	if scale == 0 {
		// Window smaller than the grid: fall back to a fractional fit.
		if availW*GridHeight < availH*GridWidth {
			w, h = availW, availW*GridHeight/GridWidth
		} else {
			w, h = availH*GridWidth/GridHeight, availH
		}
		if w == 0 || h == 0 {
			return Viewport{}
		}
	}
	return Viewport{
		X: (fbW - w) / 2,
		Y: (fbH - h) / 2,
		W: w,
		H: h,
	}
}

// WindowSize is the framebuffer that shows the grid at density pixels per cell
// with BorderThickness free on every side.
func WindowSize(density int) (w, h int) {
	return GridWidth*density + 2*BorderThickness, GridHeight*density + 2*BorderThickness
}
