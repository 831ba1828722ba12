package compiler

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in     string
		number int
		es     bool
	}{
		{"460", 460, false},
		{"4.6", 460, false},
		{"330", 330, false},
		{"300 es", 300, true},
		{"300es", 300, true},
		{"3.0 ES", 300, true},
		{"100 es", 100, true},
		{"320 es", 320, true},
	}

	for _, tt := range tests {
		d, err := ParseDialect(tt.in)
		if err != nil {
			t.Errorf("ParseDialect(%q) failed: %v", tt.in, err)
			continue
		}
		if d.Number() != tt.number || d.ES != tt.es {
			t.Errorf("ParseDialect(%q) = %s, expected %d es=%v", tt.in, d, tt.number, tt.es)
		}
	}
}

func TestParseDialect_Invalid(t *testing.T) {
	for _, in := range []string{"", "es", "abc", "470", "5.0", "100", "330 es", "42"} {
		if _, err := ParseDialect(in); !errors.Is(err, ErrInvalidDialect) {
			t.Errorf("ParseDialect(%q): expected ErrInvalidDialect, got %v", in, err)
		}
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		kind, version string
		want          string
	}{
		{"", "", "auto"},
		{"auto", "", "auto"},
		{"spirv", "", "spirv"},
		{"SPIR-V", "", "spirv"},
		{"glsl", "", "glsl 460"},
		{"glsl", "300 es", "glsl 300 es"},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.kind, tt.version)
		if err != nil {
			t.Errorf("ParseTarget(%q, %q) failed: %v", tt.kind, tt.version, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseTarget(%q, %q) = %s, expected %s", tt.kind, tt.version, got, tt.want)
		}
	}

	if _, err := ParseTarget("hlsl", ""); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestResolveTarget(t *testing.T) {
	auto := Target{Kind: TargetAuto}
	spv := Target{Kind: TargetSPIRV}
	glsl460 := Target{Kind: TargetGLSL, Dialect: GLSL460}
	glsl300es := Target{Kind: TargetGLSL, Dialect: GLSL300ES}
	glsl100es := Target{Kind: TargetGLSL, Dialect: GLSL100ES}

	tests := []struct {
		name      string
		in        Target
		skipSPIRV bool
		wasm      bool
		want      string
		err       error
	}{
		{"auto", auto, false, false, "spirv", nil},
		{"auto skip", auto, true, false, "glsl 460", nil},
		{"auto wasm", auto, false, true, "glsl 300 es", nil},
		{"auto wasm skip", auto, true, true, "glsl 300 es", nil},
		{"spirv", spv, false, false, "spirv", nil},
		{"spirv skip", spv, true, false, "", ErrInvalidSkipSPIRV},
		{"spirv wasm", spv, false, true, "", ErrInvalidTarget},
		{"glsl", glsl460, false, false, "glsl 460", nil},
		{"glsl skip", glsl460, true, false, "glsl 460", nil},
		{"glsl desktop wasm", glsl460, false, true, "", ErrInvalidTarget},
		{"glsl 300 es wasm", glsl300es, false, true, "glsl 300 es", nil},
		{"glsl 100 es wasm", glsl100es, false, true, "glsl 100 es", nil},
		{"glsl no version", Target{Kind: TargetGLSL}, false, false, "", ErrInvalidTarget},
	}

	for _, tt := range tests {
		got, err := ResolveTarget(tt.in, tt.skipSPIRV, tt.wasm)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%s: expected %v, got %v", tt.name, tt.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestResolveTarget_WASMRejectsOtherES(t *testing.T) {
	d, err := ParseDialect("310 es")
	if err != nil {
		t.Fatalf("ParseDialect failed: %v", err)
	}
	if _, err := ResolveTarget(Target{Kind: TargetGLSL, Dialect: d}, false, true); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestCrossArgs(t *testing.T) {
	if got, want := crossArgs(GLSL300ES), []string{"--version", "300", "--es"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got, want := crossArgs(GLSL460), []string{"--version", "460", "--no-es"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
