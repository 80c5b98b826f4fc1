package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderProgram wraps a linked vertex+fragment pair. Attribute and uniform
// names are resolved to handles once at link time, never per frame.
type ShaderProgram struct {
	id       uint32
	attribs  map[string]uint32
	uniforms map[string]int32
}

// NewShaderProgram compiles and links the two stages and resolves the given
// symbolic names. On any compile/link failure the driver diagnostic is
// captured in the returned error and no partially usable program escapes.
func NewShaderProgram(vertSrc, fragSrc string, attribs, uniforms []string) (*ShaderProgram, error) {
	id, err := linkProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}

	p := &ShaderProgram{
		id:       id,
		attribs:  make(map[string]uint32, len(attribs)),
		uniforms: make(map[string]int32, len(uniforms)),
	}
	for _, name := range attribs {
		loc := gl.GetAttribLocation(id, gl.Str(name+"\x00"))
		if loc < 0 {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("attribute %q not found in program", name)
		}
		p.attribs[name] = uint32(loc)
	}
	for _, name := range uniforms {
		p.uniforms[name] = gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}
	return p, nil
}

// Use binds the program; a precondition for any draw call against it.
func (p *ShaderProgram) Use() {
	gl.UseProgram(p.id)
}

func (p *ShaderProgram) Attrib(name string) uint32 {
	return p.attribs[name]
}

func (p *ShaderProgram) Uniform(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		return -1
	}
	return loc
}

func (p *ShaderProgram) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Projection returns the orthographic transform mapping pixel coordinates
// with origin at the top-left to normalized device coordinates. Pure
// computation, independent of any context.
func Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
