package main

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"
)

type Texture struct {
	tex uint32
}

func (t Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
}

func CreateTexture() (Texture, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return Texture{tex}, nil
}

// UploadRGBA streams a packed RGBA buffer into the bound texture.
func (t Texture) UploadRGBA(width, height int, pix []uint8) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pix))
}

func (t Texture) Close() error {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
	return nil
}

type Shader struct {
	shader uint32
}

func GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	log := make([]uint8, length)
	var logLen int32
	gl.GetShaderInfoLog(shader, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateShader(shaderType uint32, source string) (Shader, error) {
	shader := gl.CreateShader(shaderType)
	data := gl.Str(source)
	length := int32(len(source))
	gl.ShaderSource(shader, 1, &data, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return Shader{}, fmt.Errorf("shader compilation failed: %s", GetShaderInfoLog(shader))
	}
	return Shader{shader}, nil
}

func (s Shader) Close() error {
	if s.shader != 0 {
		gl.DeleteShader(s.shader)
		s.shader = 0
	}
	return nil
}

type Program struct {
	program        uint32
	vertexShader   Shader
	fragmentShader Shader
}

func GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	log := make([]uint8, length)
	var logLen int32
	gl.GetProgramInfoLog(program, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateProgram(vertexShader string, fragmentShader string) (Program, error) {
	vs, err := CreateShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return Program{}, err
	}
	fs, err := CreateShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return Program{}, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs.shader)
	gl.AttachShader(program, fs.shader)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return Program{}, fmt.Errorf("program link failed: %s", GetProgramInfoLog(program))
	}
	return Program{program, vs, fs}, nil
}

func (p Program) Use() {
	gl.UseProgram(p.program)
}

func (p Program) Close() error {
	if err := p.vertexShader.Close(); err != nil {
		return err
	}
	if err := p.fragmentShader.Close(); err != nil {
		return err
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	return nil
}

const (
	quadVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    };` + "\x00"
	quadFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).rgb, 1.0);
    };` + "\x00"
)

type QuadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// PixelScreen uploads a Framebuffer into a texture each frame and draws it
// as a screen-filling quad, letterboxed to preserve the buffer's aspect
// ratio.
type PixelScreen struct {
	tex         Texture
	program     Program
	a_position  int32
	a_texcoord  int32
	u_transform int32
	u_tex       int32
	vertices    [6]QuadVertex
}

func CreatePixelScreen() (*PixelScreen, error) {
	program, err := CreateProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, err
	}
	tex, err := CreateTexture()
	if err != nil {
		program.Close()
		return nil, err
	}
	ps := &PixelScreen{
		tex:         tex,
		program:     program,
		a_position:  gl.GetAttribLocation(program.program, gl.Str("a_position\x00")),
		a_texcoord:  gl.GetAttribLocation(program.program, gl.Str("a_texcoord\x00")),
		u_transform: gl.GetUniformLocation(program.program, gl.Str("u_transform\x00")),
		u_tex:       gl.GetUniformLocation(program.program, gl.Str("u_tex\x00")),
	}
	corners := [6][2]float32{
		{-1, 1}, {-1, -1}, {1, -1},
		{1, -1}, {1, 1}, {-1, 1},
	}
	texcoords := [6][2]float32{
		{0, 0}, {0, 1}, {1, 1},
		{1, 1}, {1, 0}, {0, 0},
	}
	for i := range ps.vertices {
		ps.vertices[i] = QuadVertex{position: corners[i], texcoord: texcoords[i]}
	}
	return ps, nil
}

func (ps *PixelScreen) Render(fb *Framebuffer) error {
	ps.program.Use()
	ps.tex.Bind()
	ps.tex.UploadRGBA(fb.Width, fb.Height, fb.Pix)
	var activeTexture int32
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &activeTexture)
	gl.Uniform1i(ps.u_tex, activeTexture-gl.TEXTURE0)
	gl.EnableVertexAttribArray(uint32(ps.a_position))
	gl.VertexAttribPointer(
		uint32(ps.a_position), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(QuadVertex{})),
		gl.Ptr(&ps.vertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(ps.a_texcoord))
	gl.VertexAttribPointer(
		uint32(ps.a_texcoord), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(QuadVertex{})),
		gl.Ptr(&ps.vertices[0].texcoord[0]))

	// letterbox: scale down whichever axis the window has more of
	bufAspect := float32(fb.Width) / float32(fb.Height)
	winAspect := float32(fbSize.X) / float32(fbSize.Y)
	sx, sy := float32(1), float32(1)
	if winAspect > bufAspect {
		sx = bufAspect / winAspect
	} else {
		sy = winAspect / bufAspect
	}
	mTransform := mgl.Scale3D(sx, sy, 1)
	gl.UniformMatrix4fv(ps.u_transform, 1, false, &mTransform[0])
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.DisableVertexAttribArray(uint32(ps.a_position))
	gl.DisableVertexAttribArray(uint32(ps.a_texcoord))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (ps *PixelScreen) Close() error {
	ps.tex.Close()
	return ps.program.Close()
}
