package shaderkind

import (
	"errors"
	"testing"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		path  string
		kind  Kind
		ext   string
		konst string
	}{
		{"basic.vert", Vertex, "vert", "VertexShader"},
		{"shaders/basic.frag", Fragment, "frag", "FragmentShader"},
		{"/abs/path/lines.geom", Geometry, "geom", "GeometryShader"},
		{"blur.comp", Compute, "comp", "ComputeShader"},
		{"patch.tesc", TessControl, "tesc", "TessControlShader"},
		{"patch.tese", TessEvaluation, "tese", "TessEvaluationShader"},
		{"UPPER.VERT", Vertex, "vert", "VertexShader"},
	}

	for _, tt := range tests {
		info, err := FromPath(tt.path)
		if err != nil {
			t.Errorf("FromPath(%q) failed: %v", tt.path, err)
			continue
		}
		if info.Kind != tt.kind {
			t.Errorf("FromPath(%q): expected %s, got %s", tt.path, tt.kind, info.Kind)
		}
		if info.Ext != tt.ext {
			t.Errorf("FromPath(%q): expected ext %q, got %q", tt.path, tt.ext, info.Ext)
		}
		if info.Const != tt.konst {
			t.Errorf("FromPath(%q): expected const %q, got %q", tt.path, tt.konst, info.Const)
		}
	}
}

func TestFromPath_Unknown(t *testing.T) {
	for _, path := range []string{"noext", "shader.glsl", "dir.v/file"} {
		if _, err := FromPath(path); !errors.Is(err, ErrUnknownExtension) {
			t.Errorf("FromPath(%q): expected ErrUnknownExtension, got %v", path, err)
		}
	}
}

func TestKindInfoRoundTrip(t *testing.T) {
	for _, ext := range Extensions() {
		info, err := FromPath("x." + ext)
		if err != nil {
			t.Fatalf("FromPath(x.%s) failed: %v", ext, err)
		}
		if got := info.Kind.Info(); got != info {
			t.Errorf("%s: Info() = %+v, expected %+v", ext, got, info)
		}
	}
}
