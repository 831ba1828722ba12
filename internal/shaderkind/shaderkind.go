// Package shaderkind maps GLSL source file extensions to shader stages.
package shaderkind

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownExtension is returned for a path whose extension names no stage.
var ErrUnknownExtension = errors.New("unknown shader extension")

// Kind is a shader pipeline stage.
type Kind uint8

// Shader stages.
const (
	Vertex Kind = iota
	Fragment
	Geometry
	Compute
	TessControl
	TessEvaluation
)

// Info describes one stage.
type Info struct {
	Kind Kind
	// Ext is the file extension without the dot. It doubles as the stage
	// name understood by glslangValidator -S.
	Ext string
	// Const is the glshader constant holding the GL enum of the stage.
	Const string
}

var kinds = []Info{
	{Kind: Vertex, Ext: "vert", Const: "VertexShader"},
	{Kind: Fragment, Ext: "frag", Const: "FragmentShader"},
	{Kind: Geometry, Ext: "geom", Const: "GeometryShader"},
	{Kind: Compute, Ext: "comp", Const: "ComputeShader"},
	{Kind: TessControl, Ext: "tesc", Const: "TessControlShader"},
	{Kind: TessEvaluation, Ext: "tese", Const: "TessEvaluationShader"},
}

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Geometry:
		return "geometry"
	case Compute:
		return "compute"
	case TessControl:
		return "tessellation control"
	case TessEvaluation:
		return "tessellation evaluation"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Info returns the stage description of k.
func (k Kind) Info() Info {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return Info{Kind: k}
}

// FromPath returns the stage of a shader source file.
func FromPath(path string) (Info, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return Info{}, fmt.Errorf("%w: %s has no extension", ErrUnknownExtension, path)
	}
	for _, info := range kinds {
		if info.Ext == ext {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: .%s", ErrUnknownExtension, ext)
}

// Extensions lists the recognized extensions in stage order.
func Extensions() []string {
	exts := make([]string, len(kinds))
	for i, info := range kinds {
		exts[i] = info.Ext
	}
	return exts
}
