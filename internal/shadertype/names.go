package shadertype

import (
	"fmt"
	"strings"
)

// Import paths referenced by host value types.
const (
	Mgl32Import = "github.com/go-gl/mathgl/mgl32"
	Mgl64Import = "github.com/go-gl/mathgl/mgl64"
)

// DeclaredName returns the GLSL spelling of g.
func DeclaredName(g Generic) string {
	switch g := g.(type) {
	case Atom:
		return baseKeyword(g)
	case Vector:
		return fmt.Sprintf("%s%d", vectorFamily(g.Base), g.Components)
	case Matrix:
		return fmt.Sprintf("%s%d", matrixFamily(g.Base), g.N)
	default:
		panic(badType(g))
	}
}

// TypeName returns the GLSL spelling of t, with array dimensions outermost first.
func TypeName(t Type) string {
	switch t := t.(type) {
	case Item:
		return DeclaredName(t.Generic)
	case Array:
		var dims strings.Builder
		var elem Type = t
		for {
			a, ok := elem.(Array)
			if !ok {
				break
			}
			fmt.Fprintf(&dims, "[%d]", a.Size)
			elem = a.Elem
		}
		return TypeName(elem) + dims.String()
	case Image:
		return "sampler"
	default:
		panic(badType(t))
	}
}

func baseKeyword(a Atom) string {
	switch a {
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	case UInt:
		return "uint"
	case Bool:
		return "bool"
	default:
		panic(badType(a))
	}
}

func vectorFamily(a Atom) string {
	switch a {
	case Int:
		return "ivec"
	case Float:
		return "vec"
	case Double:
		return "dvec"
	case UInt:
		return "uvec"
	case Bool:
		return "bvec"
	default:
		panic(badType(a))
	}
}

// matrixFamily only distinguishes double matrices; other bases never reach
// a Matrix value.
func matrixFamily(a Atom) string {
	if a == Double {
		return "dmat"
	}
	return "mat"
}

// HostValueType returns the Go type a generated setter accepts for t.
func HostValueType(t Type) string {
	switch t := t.(type) {
	case Item:
		if a, ok := t.Generic.(Atom); ok {
			return primitive(a)
		}
		return aggregate(t.Generic)
	case Array:
		return "*" + arrayHostType(t)
	case Image:
		return HostValueType(AtomType(UInt))
	default:
		panic(badType(t))
	}
}

// arrayHostType is the by-value form of an array used inside the pointer.
// Bool elements take the integer path.
func arrayHostType(t Type) string {
	switch t := t.(type) {
	case Item:
		if a, ok := t.Generic.(Atom); ok {
			if a == Bool {
				return "int32"
			}
			return primitive(a)
		}
		return aggregate(t.Generic)
	case Array:
		return fmt.Sprintf("[%d]%s", t.Size, arrayHostType(t.Elem))
	case Image:
		return HostValueType(AtomType(UInt))
	default:
		panic(badType(t))
	}
}

func primitive(a Atom) string {
	switch a {
	case Int:
		return "int32"
	case Float:
		return "float32"
	case Double:
		return "float64"
	case UInt:
		return "uint32"
	case Bool:
		return "bool"
	default:
		panic(badType(a))
	}
}

func aggregate(g Generic) string {
	switch g := g.(type) {
	case Atom:
		return primitive(g)
	case Vector:
		switch g.Base {
		case Float:
			return fmt.Sprintf("mgl32.Vec%d", g.Components)
		case Double:
			return fmt.Sprintf("mgl64.Vec%d", g.Components)
		case UInt:
			return fmt.Sprintf("[%d]uint32", g.Components)
		default:
			// Int and Bool vectors share the integer path.
			return fmt.Sprintf("[%d]int32", g.Components)
		}
	case Matrix:
		if g.Base == Double {
			return fmt.Sprintf("mgl64.Mat%d", g.N)
		}
		return fmt.Sprintf("mgl32.Mat%d", g.N)
	default:
		panic(badType(g))
	}
}

// HostImports returns the import paths HostValueType(t) refers to.
func HostImports(t Type) []string {
	switch t := t.(type) {
	case Item:
		switch g := t.Generic.(type) {
		case Vector:
			return mglImport(g.Base)
		case Matrix:
			return mglImport(g.Base)
		}
		return nil
	case Array:
		return HostImports(t.Elem)
	case Image:
		return nil
	default:
		panic(badType(t))
	}
}

func mglImport(a Atom) []string {
	switch a {
	case Float:
		return []string{Mgl32Import}
	case Double:
		return []string{Mgl64Import}
	default:
		return nil
	}
}
