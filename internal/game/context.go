package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GraphicsContext owns the GL state a 2D sprite game needs: over-blend
// enabled, depth test and culling off, viewport matching the framebuffer.
// Callers treat a construction failure as fatal to the whole session.
type GraphicsContext struct {
	width, height int
}

func NewGraphicsContext(width, height int) (*GraphicsContext, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	c := &GraphicsContext{}
	c.Resize(width, height)
	c.SetClearColor(0, 0, 0, 1)
	return c, nil
}

func (c *GraphicsContext) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *GraphicsContext) Resize(width, height int) {
	c.width = width
	c.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (c *GraphicsContext) SetClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *GraphicsContext) Size() (int, int) {
	return c.width, c.height
}
