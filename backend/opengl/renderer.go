// Package opengl provides an OpenGL 4.1 backend for hellotext scenes.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/hellotext"
)

var _ hellotext.Renderer = (*Renderer)(nil)

// Renderer draws glyph quads sampled from a 2D-array texture.
type Renderer struct {
	shader     uint32
	vao, vbo   uint32
	ebo        uint32
	atlasTex   uint32
	projLoc    int32
	texLoc     int32
	width      int
	height     int
	color      uint32
	indexCount int32
	vboBytes   int
	eboBytes   int

	quads *hellotext.QuadBuffer
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec3 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec3 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source
// Layers hold premultiplied white coverage; the vertex color tints it.
const fragmentShaderSource = `
#version 410 core
in vec3 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2DArray atlas;

void main() {
    float coverage = texture(atlas, TexCoord).a;
    FragColor = vec4(Color.rgb * Color.a, Color.a) * coverage;
}
` + "\x00"

// NewRenderer creates a new OpenGL glyph renderer.
// A GL context must be current on the calling thread.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		color:  hellotext.ColorWhite,
		quads:  hellotext.AcquireQuadBuffer(),
	}

	// Create shader program
	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		hellotext.ReleaseQuadBuffer(r.quads)
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// Get uniform locations
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("atlas\x00"))

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Create EBO
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (3 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(hellotext.Vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute (u, v, layer)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(hellotext.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(hellotext.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return r, nil
}

// MaxLayers returns GL_MAX_ARRAY_TEXTURE_LAYERS of the current context.
func MaxLayers() int {
	var n int32
	gl.GetIntegerv(gl.MAX_ARRAY_TEXTURE_LAYERS, &n)
	return int(n)
}

// SetColor sets the text color (packed RGBA) used by the next UpdateQuads.
func (r *Renderer) SetColor(color uint32) {
	r.color = color
}

// UploadAtlas creates the 2D-array texture from the atlas pixels.
func (r *Renderer) UploadAtlas(a *hellotext.Atlas) error {
	if a.Released() || a.Layers == 0 {
		return fmt.Errorf("atlas has no pixels")
	}
	if limit := MaxLayers(); limit > 0 && a.Layers > limit {
		return fmt.Errorf("%w: %d layers, GL limit %d", hellotext.ErrTooManyGlyphs, a.Layers, limit)
	}
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}

	gl.GenTextures(1, &r.atlasTex)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, r.atlasTex)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8,
		int32(a.CellWidth), int32(a.CellHeight), int32(a.Layers),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(a.Pix))
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("texture upload failed: GL error 0x%x", code)
	}
	hellotext.Logger().Debug("atlas uploaded", "texture", r.atlasTex, "layers", a.Layers)
	return nil
}

// UpdateQuads replaces the quad buffer. Buffers are reallocated only when
// they grow; otherwise the data is updated in place.
func (r *Renderer) UpdateQuads(quads []hellotext.Quad) error {
	if err := r.quads.Build(quads, r.color); err != nil {
		return err
	}
	r.indexCount = int32(len(r.quads.IdxBuffer))
	if r.indexCount == 0 {
		return nil
	}

	vtxBytes := len(r.quads.VtxBuffer) * int(unsafe.Sizeof(hellotext.Vertex{}))
	idxBytes := len(r.quads.IdxBuffer) * 2

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if vtxBytes > r.vboBytes {
		gl.BufferData(gl.ARRAY_BUFFER, vtxBytes, gl.Ptr(r.quads.VtxBuffer), gl.DYNAMIC_DRAW)
		r.vboBytes = vtxBytes
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, vtxBytes, gl.Ptr(r.quads.VtxBuffer))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if idxBytes > r.eboBytes {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, idxBytes, gl.Ptr(r.quads.IdxBuffer), gl.DYNAMIC_DRAW)
		r.eboBytes = idxBytes
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, idxBytes, gl.Ptr(r.quads.IdxBuffer))
	}

	gl.BindVertexArray(0)
	return nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render clears the framebuffer and draws the quads.
func (r *Renderer) Render() error {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.indexCount == 0 || r.atlasTex == 0 {
		return nil
	}

	// Premultiplied alpha blending
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)

	// Set projection matrix (orthographic)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, r.atlasTex)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw failed: GL error 0x%x", code)
	}
	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
		r.atlasTex = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
	if r.quads != nil {
		hellotext.ReleaseQuadBuffer(r.quads)
		r.quads = nil
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

// compileShader compiles one shader stage.
func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
