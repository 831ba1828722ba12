package glshader

import "github.com/go-gl/gl/v4.6-core/gl"

// Slot is an optional uniform location. Uploads through an empty slot do
// nothing, so uniforms the driver optimized away stay harmless.
type Slot struct {
	loc int32
	ok  bool
}

// Fixed returns a slot for a location known ahead of time. A negative
// location gives an empty slot.
func Fixed(loc int32) Slot {
	return Slot{loc: loc, ok: loc >= 0}
}

// Lookup queries the location of name in a linked program.
func Lookup(program uint32, name string) Slot {
	return Fixed(gl.GetUniformLocation(program, gl.Str(name+"\x00")))
}

// Get returns the location and whether the slot holds one.
func (s Slot) Get() (int32, bool) {
	return s.loc, s.ok
}

// BoolInt converts a bool for the integer upload path.
func BoolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func (s Slot) Uniform1i(v int32) {
	if s.ok {
		gl.Uniform1i(s.loc, v)
	}
}

func (s Slot) Uniform1ui(v uint32) {
	if s.ok {
		gl.Uniform1ui(s.loc, v)
	}
}

func (s Slot) Uniform1f(v float32) {
	if s.ok {
		gl.Uniform1f(s.loc, v)
	}
}

func (s Slot) Uniform1d(v float64) {
	if s.ok {
		gl.Uniform1d(s.loc, v)
	}
}

func (s Slot) Uniform1iv(count int32, v *int32) {
	if s.ok {
		gl.Uniform1iv(s.loc, count, v)
	}
}

func (s Slot) Uniform2iv(count int32, v *int32) {
	if s.ok {
		gl.Uniform2iv(s.loc, count, v)
	}
}

func (s Slot) Uniform3iv(count int32, v *int32) {
	if s.ok {
		gl.Uniform3iv(s.loc, count, v)
	}
}

func (s Slot) Uniform4iv(count int32, v *int32) {
	if s.ok {
		gl.Uniform4iv(s.loc, count, v)
	}
}

func (s Slot) Uniform1uiv(count int32, v *uint32) {
	if s.ok {
		gl.Uniform1uiv(s.loc, count, v)
	}
}

func (s Slot) Uniform2uiv(count int32, v *uint32) {
	if s.ok {
		gl.Uniform2uiv(s.loc, count, v)
	}
}

func (s Slot) Uniform3uiv(count int32, v *uint32) {
	if s.ok {
		gl.Uniform3uiv(s.loc, count, v)
	}
}

func (s Slot) Uniform4uiv(count int32, v *uint32) {
	if s.ok {
		gl.Uniform4uiv(s.loc, count, v)
	}
}

func (s Slot) Uniform1fv(count int32, v *float32) {
	if s.ok {
		gl.Uniform1fv(s.loc, count, v)
	}
}

func (s Slot) Uniform2fv(count int32, v *float32) {
	if s.ok {
		gl.Uniform2fv(s.loc, count, v)
	}
}

func (s Slot) Uniform3fv(count int32, v *float32) {
	if s.ok {
		gl.Uniform3fv(s.loc, count, v)
	}
}

func (s Slot) Uniform4fv(count int32, v *float32) {
	if s.ok {
		gl.Uniform4fv(s.loc, count, v)
	}
}

func (s Slot) Uniform1dv(count int32, v *float64) {
	if s.ok {
		gl.Uniform1dv(s.loc, count, v)
	}
}

func (s Slot) Uniform2dv(count int32, v *float64) {
	if s.ok {
		gl.Uniform2dv(s.loc, count, v)
	}
}

func (s Slot) Uniform3dv(count int32, v *float64) {
	if s.ok {
		gl.Uniform3dv(s.loc, count, v)
	}
}

func (s Slot) Uniform4dv(count int32, v *float64) {
	if s.ok {
		gl.Uniform4dv(s.loc, count, v)
	}
}

func (s Slot) UniformMatrix2fv(count int32, transpose bool, v *float32) {
	if s.ok {
		gl.UniformMatrix2fv(s.loc, count, transpose, v)
	}
}

func (s Slot) UniformMatrix3fv(count int32, transpose bool, v *float32) {
	if s.ok {
		gl.UniformMatrix3fv(s.loc, count, transpose, v)
	}
}

func (s Slot) UniformMatrix4fv(count int32, transpose bool, v *float32) {
	if s.ok {
		gl.UniformMatrix4fv(s.loc, count, transpose, v)
	}
}

func (s Slot) UniformMatrix2dv(count int32, transpose bool, v *float64) {
	if s.ok {
		gl.UniformMatrix2dv(s.loc, count, transpose, v)
	}
}

func (s Slot) UniformMatrix3dv(count int32, transpose bool, v *float64) {
	if s.ok {
		gl.UniformMatrix3dv(s.loc, count, transpose, v)
	}
}

func (s Slot) UniformMatrix4dv(count int32, transpose bool, v *float64) {
	if s.ok {
		gl.UniformMatrix4dv(s.loc, count, transpose, v)
	}
}
