package game

// RasterizeRGBA writes one RGBA8 pixel per cell, row-major, into dst and
// returns it. dst is grown when it is shorter than GridCells*4.
func RasterizeRGBA(dst []uint8, snap *Snapshot, pal *Colors, rng Source) []uint8 {
	n := snap.Width * snap.Height * 4
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	for i, cs := range snap.Cells {
		col := pal.CellColor(cs, snap.Phase, rng)
		o := i * 4
		dst[o+0] = col.R
		dst[o+1] = col.G
		dst[o+2] = col.B
		dst[o+3] = 255
	}
	return dst
}
