package reflect

import (
	"fmt"

	"github.com/Faultbox/shaderbind/internal/shadertype"
	"github.com/Faultbox/shaderbind/internal/spirv"
)

// typeTable is the output of the first pass.
type typeTable struct {
	types     map[spirv.ID]shadertype.Type
	constants map[spirv.ID]uint32
	pointers  map[spirv.ID]spirv.ID

	// diagnostics for types that were skipped rather than rejected.
	diagnostics []Diagnostic
}

// nameTable is the output of the second pass. order keeps OpName order so
// results do not depend on map iteration.
type nameTable struct {
	records map[spirv.ID]*Uniform
	order   []spirv.ID
}

// collectTypes records integer constants, supported types and pointer types.
func collectTypes(instrs []spirv.Instruction) (*typeTable, error) {
	t := &typeTable{
		types:     make(map[spirv.ID]shadertype.Type),
		constants: make(map[spirv.ID]uint32),
		pointers:  make(map[spirv.ID]spirv.ID),
	}

	for _, ins := range instrs {
		id := ins.ResultID

		switch ins.Opcode {
		case spirv.OpConstant:
			// Only integer constants can size arrays.
			if !t.isInteger(ins.ResultType) {
				continue
			}
			if v, ok := ins.Operand(0).Literal(); ok {
				t.constants[id] = v
			}

		case spirv.OpTypeInt:
			width, _ := ins.Operand(0).Literal()
			signed, _ := ins.Operand(1).Literal()
			if width != 32 {
				return nil, fmt.Errorf("%w: %d-bit integer %%%d", ErrUnsupportedType, width, id)
			}
			if signed == 0 {
				t.types[id] = shadertype.AtomType(shadertype.UInt)
			} else {
				t.types[id] = shadertype.AtomType(shadertype.Int)
			}

		case spirv.OpTypeFloat:
			width, _ := ins.Operand(0).Literal()
			switch width {
			case 32:
				t.types[id] = shadertype.AtomType(shadertype.Float)
			case 64:
				t.types[id] = shadertype.AtomType(shadertype.Double)
			default:
				return nil, fmt.Errorf("%w: %d-bit float %%%d", ErrUnsupportedType, width, id)
			}

		case spirv.OpTypeBool:
			t.types[id] = shadertype.AtomType(shadertype.Bool)

		case spirv.OpTypeVector:
			component, _ := ins.Operand(0).ID()
			n, _ := ins.Operand(1).Literal()
			atom, err := t.atom(component)
			if err != nil {
				return nil, fmt.Errorf("vector %%%d: %w", id, err)
			}
			if n < 2 || n > 4 {
				return nil, fmt.Errorf("%w: %d-component vector %%%d", ErrUnsupportedType, n, id)
			}
			t.types[id] = shadertype.VectorType(atom, n)

		case spirv.OpTypeMatrix:
			column, _ := ins.Operand(0).ID()
			n, _ := ins.Operand(1).Literal()
			vec, err := t.vector(column)
			if err != nil {
				return nil, fmt.Errorf("matrix %%%d: %w", id, err)
			}
			if !vec.Base.IsFloat() {
				return nil, fmt.Errorf("%w: matrix %%%d of %s", ErrUnsupportedType, id, vec.Base)
			}
			if vec.Components != n {
				return nil, fmt.Errorf("%w: non-square matrix %%%d (%d columns of %d)",
					ErrUnsupportedType, id, n, vec.Components)
			}
			t.types[id] = shadertype.MatrixType(vec.Base, n)

		case spirv.OpTypeArray:
			elemID, _ := ins.Operand(0).ID()
			lengthID, _ := ins.Operand(1).ID()
			elem, ok := t.types[elemID]
			if !ok {
				t.skip(id, fmt.Sprintf("array element type %%%d is not supported", elemID))
				continue
			}
			size, ok := t.constants[lengthID]
			if !ok || size == 0 {
				t.skip(id, fmt.Sprintf("array length %%%d is not a known positive constant", lengthID))
				continue
			}
			t.types[id] = shadertype.ArrayType(elem, size)

		case spirv.OpTypeImage, spirv.OpTypeSampledImage:
			t.types[id] = shadertype.Image{}

		case spirv.OpTypePointer:
			pointee, ok := ins.Operand(1).ID()
			if !ok {
				return nil, fmt.Errorf("%w: pointer %%%d has no pointee", spirv.ErrInvalidInstruction, id)
			}
			t.pointers[id] = pointee
		}
	}

	return t, nil
}

func (t *typeTable) isInteger(id spirv.ID) bool {
	item, ok := t.types[id].(shadertype.Item)
	if !ok {
		return false
	}
	a, ok := item.Generic.(shadertype.Atom)
	return ok && (a == shadertype.Int || a == shadertype.UInt)
}

func (t *typeTable) atom(id spirv.ID) (shadertype.Atom, error) {
	if item, ok := t.types[id].(shadertype.Item); ok {
		if a, ok := item.Generic.(shadertype.Atom); ok {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: component type %%%d is not a defined scalar", ErrUnsupportedType, id)
}

func (t *typeTable) vector(id spirv.ID) (shadertype.Vector, error) {
	if item, ok := t.types[id].(shadertype.Item); ok {
		if v, ok := item.Generic.(shadertype.Vector); ok {
			return v, nil
		}
	}
	return shadertype.Vector{}, fmt.Errorf("%w: column type %%%d is not a defined vector", ErrUnsupportedType, id)
}

func (t *typeTable) skip(id spirv.ID, msg string) {
	t.diagnostics = append(t.diagnostics, Diagnostic{ID: id, Message: msg})
}

// collectNames registers every OpName and applies Location and Binding
// decorations to the registered records.
func collectNames(instrs []spirv.Instruction) (*nameTable, error) {
	n := &nameTable{records: make(map[spirv.ID]*Uniform)}

	for _, ins := range instrs {
		switch ins.Opcode {
		case spirv.OpName:
			id, ok := ins.Operand(0).ID()
			if !ok {
				continue
			}
			name, ok := ins.Operand(1).Text()
			if !ok || name == "" {
				continue
			}
			if _, seen := n.records[id]; !seen {
				n.order = append(n.order, id)
			}
			n.records[id] = &Uniform{ID: id, Name: name, Location: NoLocation}

		case spirv.OpDecorate:
			id, _ := ins.Operand(0).ID()
			dec, _ := ins.Operand(1).Decoration()
			if dec != spirv.DecorationLocation && dec != spirv.DecorationBinding {
				continue
			}
			value, ok := ins.Operand(2).Literal()
			if !ok {
				return nil, fmt.Errorf("%w: %s decoration on %%%d has no value",
					spirv.ErrInvalidInstruction, dec, id)
			}
			u, ok := n.records[id]
			if !ok {
				return nil, fmt.Errorf("%w: %w: %s on %%%d", ErrUnsupportedType, ErrUnknownID, dec, id)
			}
			if dec == spirv.DecorationLocation {
				u.Location = int32(value)
			} else {
				binding := int32(value)
				u.Binding = &binding
			}
		}
	}

	return n, nil
}

// resolveVariables attaches types to named UniformConstant variables and
// reports the ones whose type cannot be resolved.
func resolveVariables(instrs []spirv.Instruction, types *typeTable, names *nameTable) []Diagnostic {
	var diags []Diagnostic

	for _, ins := range instrs {
		if ins.Opcode != spirv.OpVariable {
			continue
		}
		class, _ := ins.Operand(0).StorageClass()
		if class != spirv.StorageClassUniformConstant {
			continue
		}
		u, ok := names.records[ins.ResultID]
		if !ok {
			// Stripped of debug names: not reflectable.
			continue
		}

		pointee, ok := types.pointers[ins.ResultType]
		if !ok {
			diags = append(diags, Diagnostic{ID: u.ID, Name: u.Name,
				Message: fmt.Sprintf("pointer type %%%d is not declared, it will not be wrapped", ins.ResultType)})
			continue
		}
		typ, ok := types.types[pointee]
		if !ok {
			diags = append(diags, Diagnostic{ID: u.ID, Name: u.Name,
				Message: "unsupported type, it will not be wrapped"})
			continue
		}
		u.Type = typ
	}

	return diags
}
