package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"conquest/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the grid as a single GridWidth x GridHeight texture
// re-uploaded every frame.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32
	uTex int32

	pal    game.Colors
	pixels []uint8 // RGBA8, reused across frames
}

func NewRenderer(pal game.Colors) (*Renderer, error) {
	prog, err := linkProgram(gridVertSrc, gridFragSrc)
	if err != nil {
		return nil, fmt.Errorf("grid program: %w", err)
	}

	r := &Renderer{
		prog:   prog,
		pal:    pal,
		pixels: make([]uint8, game.GridCells*4),
	}

	// Unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		game.GridWidth, game.GridHeight, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.pixels),
	)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Draw clears the framebuffer to the border colour and paints the grid in the
// largest centred viewport that keeps cells square.
func (r *Renderer) Draw(snap *game.Snapshot, rng game.Source, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	b := r.pal.Border
	gl.ClearColor(float32(b.R)/255.0, float32(b.G)/255.0, float32(b.B)/255.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	vp := game.FitViewport(fbW, fbH, game.BorderThickness)
	if vp.W == 0 {
		return
	}

	r.pixels = game.RasterizeRGBA(r.pixels, snap, &r.pal, rng)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		game.GridWidth, game.GridHeight,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.pixels),
	)

	gl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.W), int32(vp.H))
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}
