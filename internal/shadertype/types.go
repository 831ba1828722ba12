// Package shadertype is the closed algebra of uniform types recovered from
// shader modules, and the mappings from each type to its GLSL spelling, the
// Go parameter type of a generated setter, and the upload call to issue.
package shadertype

import "fmt"

// Atom is a scalar type.
type Atom uint8

// Scalar types.
const (
	Int Atom = iota
	Float
	Double
	UInt
	Bool
)

// String returns the atom name.
func (a Atom) String() string {
	switch a {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case UInt:
		return "UInt"
	case Bool:
		return "Bool"
	default:
		return fmt.Sprintf("Atom(%d)", uint8(a))
	}
}

// IsFloat reports whether a can be the base of a matrix.
func (a Atom) IsFloat() bool {
	return a == Float || a == Double
}

// Vector is a vector of 2, 3 or 4 atoms.
type Vector struct {
	Base       Atom
	Components uint32
}

// Matrix is a square N×N matrix of Float or Double.
type Matrix struct {
	Base Atom
	N    uint32
}

// Generic is one of Atom, Vector or Matrix.
type Generic interface {
	isGeneric()
}

func (Atom) isGeneric()   {}
func (Vector) isGeneric() {}
func (Matrix) isGeneric() {}

// Type is one of Item, Array or Image.
type Type interface {
	isType()
}

// Item is a single non-array value.
type Item struct {
	Generic Generic
}

// Array is a fixed-size array. Size is always positive.
type Array struct {
	Elem Type
	Size uint32
}

// Image is an opaque texture or sampler. It is set through its texture unit index.
type Image struct{}

func (Item) isType()  {}
func (Array) isType() {}
func (Image) isType() {}

// AtomType returns the Item type of a scalar.
func AtomType(a Atom) Type {
	return Item{Generic: a}
}

// VectorType returns the Item type of a vector.
func VectorType(base Atom, components uint32) Type {
	return Item{Generic: Vector{Base: base, Components: components}}
}

// MatrixType returns the Item type of a square matrix.
func MatrixType(base Atom, n uint32) Type {
	return Item{Generic: Matrix{Base: base, N: n}}
}

// ArrayType returns an array of elem.
func ArrayType(elem Type, size uint32) Type {
	return Array{Elem: elem, Size: size}
}

// Equal reports whether two types are structurally identical.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case Item:
		b, ok := b.(Item)
		return ok && a.Generic == b.Generic
	case Array:
		b, ok := b.(Array)
		return ok && a.Size == b.Size && Equal(a.Elem, b.Elem)
	case Image:
		_, ok := b.(Image)
		return ok
	default:
		return false
	}
}

// badType is the panic message for a value outside the closed unions.
func badType(v any) string {
	return fmt.Sprintf("shadertype: unhandled type %T", v)
}
