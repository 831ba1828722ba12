package shadertype

import (
	"reflect"
	"testing"
)

func TestDeclaredName(t *testing.T) {
	tests := []struct {
		g    Generic
		want string
	}{
		{Int, "int"},
		{Float, "float"},
		{Double, "double"},
		{UInt, "uint"},
		{Bool, "bool"},
		{Vector{Base: Float, Components: 2}, "vec2"},
		{Vector{Base: Int, Components: 3}, "ivec3"},
		{Vector{Base: UInt, Components: 4}, "uvec4"},
		{Vector{Base: Double, Components: 3}, "dvec3"},
		{Vector{Base: Bool, Components: 2}, "bvec2"},
		{Matrix{Base: Float, N: 4}, "mat4"},
		{Matrix{Base: Double, N: 2}, "dmat2"},
	}

	for _, tt := range tests {
		if got := DeclaredName(tt.g); got != tt.want {
			t.Errorf("DeclaredName(%#v) = %q, expected %q", tt.g, got, tt.want)
		}
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{AtomType(Float), "float"},
		{ArrayType(AtomType(Float), 8), "float[8]"},
		{ArrayType(ArrayType(VectorType(Float, 3), 2), 4), "vec3[4][2]"},
		{Image{}, "sampler"},
		{ArrayType(Image{}, 4), "sampler[4]"},
	}

	for _, tt := range tests {
		if got := TypeName(tt.t); got != tt.want {
			t.Errorf("TypeName(%#v) = %q, expected %q", tt.t, got, tt.want)
		}
	}
}

func TestHostValueType(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{AtomType(Int), "int32"},
		{AtomType(Float), "float32"},
		{AtomType(Double), "float64"},
		{AtomType(UInt), "uint32"},
		{AtomType(Bool), "bool"},
		{VectorType(Float, 3), "mgl32.Vec3"},
		{VectorType(Double, 4), "mgl64.Vec4"},
		{VectorType(Int, 2), "[2]int32"},
		{VectorType(UInt, 4), "[4]uint32"},
		{VectorType(Bool, 3), "[3]int32"},
		{MatrixType(Float, 4), "mgl32.Mat4"},
		{MatrixType(Double, 3), "mgl64.Mat3"},
		{ArrayType(AtomType(Float), 8), "*[8]float32"},
		{ArrayType(AtomType(Bool), 2), "*[2]int32"},
		{ArrayType(MatrixType(Float, 4), 16), "*[16]mgl32.Mat4"},
		{ArrayType(ArrayType(AtomType(Int), 2), 3), "*[3][2]int32"},
		{Image{}, "uint32"},
		{ArrayType(Image{}, 4), "*[4]uint32"},
	}

	for _, tt := range tests {
		if got := HostValueType(tt.t); got != tt.want {
			t.Errorf("HostValueType(%s) = %q, expected %q", TypeName(tt.t), got, tt.want)
		}
	}
}

func TestHostImports(t *testing.T) {
	tests := []struct {
		t    Type
		want []string
	}{
		{AtomType(Float), nil},
		{VectorType(Float, 3), []string{Mgl32Import}},
		{MatrixType(Double, 4), []string{Mgl64Import}},
		{VectorType(Int, 3), nil},
		{ArrayType(VectorType(Float, 2), 4), []string{Mgl32Import}},
		{Image{}, nil},
	}

	for _, tt := range tests {
		if got := HostImports(tt.t); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("HostImports(%s) = %v, expected %v", TypeName(tt.t), got, tt.want)
		}
	}
}

func TestUploadSelector(t *testing.T) {
	tests := []struct {
		t      Type
		method string
		count  int
		args   string
	}{
		{AtomType(Float), "Uniform1f", 0, "value"},
		{AtomType(Int), "Uniform1i", 0, "value"},
		{AtomType(UInt), "Uniform1ui", 0, "value"},
		{AtomType(Double), "Uniform1d", 0, "value"},
		{AtomType(Bool), "Uniform1i", 0, "glshader.BoolInt(value)"},
		{VectorType(Float, 3), "Uniform3fv", 1, "1, &value[0]"},
		{VectorType(Bool, 2), "Uniform2iv", 1, "1, &value[0]"},
		{VectorType(UInt, 4), "Uniform4uiv", 1, "1, &value[0]"},
		{MatrixType(Float, 4), "UniformMatrix4fv", 1, "1, transpose, &value[0]"},
		{MatrixType(Double, 2), "UniformMatrix2dv", 1, "1, transpose, &value[0]"},
		{ArrayType(AtomType(Float), 8), "Uniform1fv", 8, "8, &value[0]"},
		{ArrayType(VectorType(Float, 4), 3), "Uniform4fv", 3, "3, &value[0][0]"},
		{ArrayType(MatrixType(Float, 3), 2), "UniformMatrix3fv", 2, "2, transpose, &value[0][0]"},
		{ArrayType(ArrayType(AtomType(Int), 2), 3), "Uniform1iv", 6, "6, &value[0][0]"},
		{Image{}, "Uniform1ui", 0, "value"},
		{ArrayType(Image{}, 4), "Uniform1uiv", 4, "4, &value[0]"},
	}

	for _, tt := range tests {
		u := UploadSelector(tt.t)
		if got := u.Method(); got != tt.method {
			t.Errorf("%s: method %q, expected %q", TypeName(tt.t), got, tt.method)
		}
		if u.Count != tt.count {
			t.Errorf("%s: count %d, expected %d", TypeName(tt.t), u.Count, tt.count)
		}
		if got := u.Args(tt.t, "value"); got != tt.args {
			t.Errorf("%s: args %q, expected %q", TypeName(tt.t), got, tt.args)
		}
	}
}

func TestUploadSelector_MatrixTranspose(t *testing.T) {
	u := UploadSelector(MatrixType(Float, 4))
	if len(u.Extra) != 1 || u.Extra[0] != (ExtraArg{Name: "transpose", Type: "bool"}) {
		t.Errorf("expected a transpose bool extra argument, got %v", u.Extra)
	}

	for _, typ := range []Type{AtomType(Float), VectorType(Float, 4), Image{}} {
		if u := UploadSelector(typ); len(u.Extra) != 0 {
			t.Errorf("%s: expected no extra arguments, got %v", TypeName(typ), u.Extra)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Type
		want bool
	}{
		{AtomType(Float), AtomType(Float), true},
		{AtomType(Float), AtomType(Int), false},
		{MatrixType(Float, 4), MatrixType(Float, 4), true},
		{MatrixType(Float, 4), VectorType(Float, 4), false},
		{ArrayType(AtomType(Float), 8), ArrayType(AtomType(Float), 8), true},
		{ArrayType(AtomType(Float), 8), ArrayType(AtomType(Float), 4), false},
		{Image{}, Image{}, true},
		{Image{}, AtomType(UInt), false},
	}

	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%s, %s) = %v, expected %v", TypeName(tt.a), TypeName(tt.b), got, tt.want)
		}
	}
}
