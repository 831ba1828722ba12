package glshader

import (
	"reflect"
	"testing"

	"github.com/Faultbox/shaderbind/internal/shadertype"
)

func TestFixed(t *testing.T) {
	tests := []struct {
		loc    int32
		wantOK bool
	}{
		{0, true},
		{7, true},
		{-1, false},
	}

	for _, tt := range tests {
		loc, ok := Fixed(tt.loc).Get()
		if ok != tt.wantOK {
			t.Errorf("Fixed(%d): expected ok=%v, got %v", tt.loc, tt.wantOK, ok)
		}
		if ok && loc != tt.loc {
			t.Errorf("Fixed(%d): expected location %d, got %d", tt.loc, tt.loc, loc)
		}
	}

	if _, ok := (Slot{}).Get(); ok {
		t.Error("expected zero Slot to be empty")
	}
}

func TestBoolInt(t *testing.T) {
	if BoolInt(true) != 1 || BoolInt(false) != 0 {
		t.Errorf("expected 1/0, got %d/%d", BoolInt(true), BoolInt(false))
	}
}

// Uploads through an empty slot must not reach GL; no context exists here.
func TestEmptySlotIsInert(t *testing.T) {
	var s Slot
	var i [16]int32
	var u [16]uint32
	var f [16]float32
	var d [16]float64

	s.Uniform1i(1)
	s.Uniform1ui(1)
	s.Uniform1f(1)
	s.Uniform1d(1)
	s.Uniform4iv(1, &i[0])
	s.Uniform4uiv(1, &u[0])
	s.Uniform4fv(1, &f[0])
	s.Uniform4dv(1, &d[0])
	s.UniformMatrix4fv(1, false, &f[0])
	s.UniformMatrix4dv(1, true, &d[0])
}

// Every upload the generator can select must exist on Slot.
func TestSlotMethodsCoverUploads(t *testing.T) {
	var types []shadertype.Type
	for _, a := range []shadertype.Atom{shadertype.Int, shadertype.Float, shadertype.Double, shadertype.UInt, shadertype.Bool} {
		types = append(types, shadertype.AtomType(a))
		for n := uint32(2); n <= 4; n++ {
			types = append(types, shadertype.VectorType(a, n))
			if a.IsFloat() {
				types = append(types, shadertype.MatrixType(a, n))
			}
		}
	}
	types = append(types, shadertype.Image{})
	for _, typ := range types[:len(types):len(types)] {
		types = append(types, shadertype.ArrayType(typ, 3))
	}

	slot := reflect.TypeOf(Slot{})
	for _, typ := range types {
		method := shadertype.UploadSelector(typ).Method()
		if _, ok := slot.MethodByName(method); !ok {
			t.Errorf("%s: Slot has no method %s", shadertype.TypeName(typ), method)
		}
	}
}

func TestKindName(t *testing.T) {
	if got := KindName(VertexShader); got != "vertex" {
		t.Errorf("expected vertex, got %q", got)
	}
	if got := KindName(0x1234); got != "stage 0x1234" {
		t.Errorf("expected stage 0x1234, got %q", got)
	}
}
