package shadertype

import (
	"fmt"
	"strings"
)

// Scalar is the scalar suffix of an upload call.
type Scalar uint8

// Upload scalar kinds.
const (
	ScalarInt Scalar = iota
	ScalarUInt
	ScalarFloat
	ScalarDouble
)

// Suffix returns the GL function suffix of s.
func (s Scalar) Suffix() string {
	switch s {
	case ScalarInt:
		return "i"
	case ScalarUInt:
		return "ui"
	case ScalarFloat:
		return "f"
	case ScalarDouble:
		return "d"
	default:
		return fmt.Sprintf("Scalar(%d)", uint8(s))
	}
}

// ExtraArg is an additional setter parameter forwarded to the upload call.
type ExtraArg struct {
	Name string
	Type string
}

// Upload selects the upload call a setter issues for one uniform.
type Upload struct {
	Components uint32
	Scalar     Scalar
	Matrix     bool
	// Count is the count argument of vector-form calls; zero means the
	// scalar form without a count.
	Count int
	Extra []ExtraArg
}

var transposeArg = []ExtraArg{{Name: "transpose", Type: "bool"}}

// UploadSelector returns the upload call for t.
func UploadSelector(t Type) Upload {
	switch t := t.(type) {
	case Item:
		switch g := t.Generic.(type) {
		case Atom:
			return Upload{Components: 1, Scalar: scalarOf(g)}
		case Vector:
			return Upload{Components: g.Components, Scalar: scalarOf(g.Base), Count: 1}
		case Matrix:
			return Upload{Components: g.N, Scalar: scalarOf(g.Base), Matrix: true, Count: 1, Extra: transposeArg}
		default:
			panic(badType(g))
		}
	case Array:
		u := UploadSelector(t.Elem)
		inner := u.Count
		if inner == 0 {
			inner = 1
		}
		u.Count = int(t.Size) * inner
		return u
	case Image:
		return UploadSelector(AtomType(UInt))
	default:
		panic(badType(t))
	}
}

// scalarOf maps an atom to its upload scalar. Bool has no native upload and
// goes through the integer path.
func scalarOf(a Atom) Scalar {
	switch a {
	case Int, Bool:
		return ScalarInt
	case UInt:
		return ScalarUInt
	case Float:
		return ScalarFloat
	case Double:
		return ScalarDouble
	default:
		panic(badType(a))
	}
}

// Method returns the name of the glshader.Slot method issuing the upload.
func (u Upload) Method() string {
	switch {
	case u.Matrix:
		return fmt.Sprintf("UniformMatrix%d%sv", u.Components, u.Scalar.Suffix())
	case u.Count > 0:
		return fmt.Sprintf("Uniform%d%sv", u.Components, u.Scalar.Suffix())
	default:
		return fmt.Sprintf("Uniform1%s", u.Scalar.Suffix())
	}
}

// Args returns the argument list of the upload call for a setter whose
// parameter is named value.
func (u Upload) Args(t Type, value string) string {
	var args []string
	if u.Count > 0 {
		args = append(args, fmt.Sprint(u.Count))
	}
	for _, e := range u.Extra {
		args = append(args, e.Name)
	}
	args = append(args, valueArg(t, value))
	return strings.Join(args, ", ")
}

// valueArg is the expression passed as the data argument: the value itself
// for scalars, otherwise a pointer to the first scalar.
func valueArg(t Type, value string) string {
	if item, ok := t.(Item); ok {
		if a, ok := item.Generic.(Atom); ok {
			if a == Bool {
				return "glshader.BoolInt(" + value + ")"
			}
			return value
		}
	}
	if _, ok := t.(Image); ok {
		return value
	}
	return "&" + value + strings.Repeat("[0]", depth(t))
}

// depth is the number of index operations from a host value to its first scalar.
func depth(t Type) int {
	switch t := t.(type) {
	case Item:
		if _, ok := t.Generic.(Atom); ok {
			return 0
		}
		return 1
	case Array:
		return 1 + depth(t.Elem)
	case Image:
		return 0
	default:
		panic(badType(t))
	}
}
