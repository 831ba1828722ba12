// Package glshader provides the OpenGL runtime used by generated shader
// bindings: stage constants, shader handles, program building and uniform
// location slots.
package glshader

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Kind is the GL enum of a shader stage.
type Kind = uint32

// Shader stages.
const (
	VertexShader         Kind = gl.VERTEX_SHADER
	FragmentShader       Kind = gl.FRAGMENT_SHADER
	GeometryShader       Kind = gl.GEOMETRY_SHADER
	ComputeShader        Kind = gl.COMPUTE_SHADER
	TessControlShader    Kind = gl.TESS_CONTROL_SHADER
	TessEvaluationShader Kind = gl.TESS_EVALUATION_SHADER
)

// ErrNoAsset is returned by Compile for a handle with neither a binary nor
// a source.
var ErrNoAsset = errors.New("shader has no asset")

// Shader is implemented by every generated shader handle.
type Shader interface {
	Kind() Kind
}

// BinaryShader embeds a SPIR-V module.
type BinaryShader interface {
	Shader
	Binary() []byte
}

// SourceShader embeds GLSL source.
type SourceShader interface {
	Shader
	Source() string
}

// KindName returns a readable name for a stage.
func KindName(k Kind) string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case GeometryShader:
		return "geometry"
	case ComputeShader:
		return "compute"
	case TessControlShader:
		return "tessellation control"
	case TessEvaluationShader:
		return "tessellation evaluation"
	default:
		return fmt.Sprintf("stage 0x%x", k)
	}
}

// Compile creates a GL shader object from a generated handle.
func Compile(s Shader) (uint32, error) {
	switch s := s.(type) {
	case BinaryShader:
		return LoadBinary(s.Kind(), s.Binary())
	case SourceShader:
		return CompileSource(s.Kind(), s.Source())
	default:
		return 0, fmt.Errorf("%w: %T", ErrNoAsset, s)
	}
}

// CompileSource compiles GLSL source into a shader object.
func CompileSource(kind Kind, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	if err := checkShader(shader, kind); err != nil {
		return 0, err
	}
	return shader, nil
}

// LoadBinary loads and specializes a SPIR-V module with entry point main.
func LoadBinary(kind Kind, binary []byte) (uint32, error) {
	if len(binary) == 0 {
		return 0, fmt.Errorf("%s shader: %w", KindName(kind), ErrNoAsset)
	}
	shader := gl.CreateShader(kind)
	gl.ShaderBinary(1, &shader, gl.SHADER_BINARY_FORMAT_SPIR_V, gl.Ptr(binary), int32(len(binary)))
	gl.SpecializeShader(shader, gl.Str("main\x00"), 0, nil, nil)

	if err := checkShader(shader, kind); err != nil {
		return 0, err
	}
	return shader, nil
}

// LinkProgram compiles every shader and links them into a program. The
// shader objects are deleted once the program is linked.
func LinkProgram(shaders ...Shader) (uint32, error) {
	var objects []uint32
	defer func() {
		for _, obj := range objects {
			gl.DeleteShader(obj)
		}
	}()

	for _, s := range shaders {
		obj, err := Compile(s)
		if err != nil {
			return 0, err
		}
		objects = append(objects, obj)
	}

	program := gl.CreateProgram()
	for _, obj := range objects {
		gl.AttachShader(program, obj)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	for _, obj := range objects {
		gl.DetachShader(program, obj)
	}
	return program, nil
}

func checkShader(shader uint32, kind Kind) error {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return fmt.Errorf("%s shader: %s", KindName(kind), log)
	}
	return nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return "(no info log)"
	}
	log := make([]byte, n)
	read(&log[0])
	return string(trimNul(log))
}

func trimNul(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}
