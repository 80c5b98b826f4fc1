package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

// Renderer owns the sprite program, the streaming vertex buffer and the
// batch that feeds it.
type Renderer struct {
	ctx  *GraphicsContext
	prog *ShaderProgram

	vao uint32
	vbo uint32

	uProjection int32
	uTex        int32
	uUseTexture int32

	batch *SpriteBatch
}

func NewRenderer(ctx *GraphicsContext) (*Renderer, error) {
	prog, err := NewShaderProgram(spriteVertSrc, spriteFragSrc, spriteAttribs, spriteUniforms)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		ctx:         ctx,
		prog:        prog,
		uProjection: prog.Uniform("projection"),
		uTex:        prog.Uniform("tex"),
		uUseTexture: prog.Uniform("useTexture"),
	}

	// Streaming VBO sized for a full batch.
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, BatchCapacity*FloatsPerQuad*4, nil, gl.STREAM_DRAW)

	stride := int32(FloatsPerVertex * 4)
	pos := prog.Attrib("position")
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointer(pos, 2, gl.FLOAT, false, stride, glOffset(0))
	uv := prog.Attrib("texCoord")
	gl.EnableVertexAttribArray(uv)
	gl.VertexAttribPointer(uv, 2, gl.FLOAT, false, stride, glOffset(2*4))
	col := prog.Attrib("color")
	gl.EnableVertexAttribArray(col)
	gl.VertexAttribPointer(col, 4, gl.FLOAT, false, stride, glOffset(4*4))
	gl.BindVertexArray(0)

	prog.Use()
	gl.Uniform1i(r.uTex, 0)

	w, h := ctx.Size()
	r.SetViewport(w, h)

	r.batch = NewSpriteBatch(r.submitQuads)
	return r, nil
}

// Batch returns the renderer's sprite batch.
func (r *Renderer) Batch() *SpriteBatch { return r.batch }

// SetViewport updates the projection uniform for a new framebuffer size.
func (r *Renderer) SetViewport(width, height int) {
	proj := Projection(float32(width), float32(height))
	r.prog.Use()
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
}

// submitQuads is the production batch submitter: upload the scratch
// buffer, bind the batch texture (or flip texturing off), one draw call.
func (r *Renderer) submitQuads(verts []float32, quads int, tex *Texture) {
	r.prog.Use()
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))

	if tex != nil && tex.ID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.ID)
		gl.Uniform1i(r.uUseTexture, 1)
	} else {
		gl.Uniform1i(r.uUseTexture, 0)
	}

	gl.DrawArrays(gl.TRIANGLES, 0, int32(quads*VertsPerQuad))
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	r.prog.Delete()
}
