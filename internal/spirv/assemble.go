package spirv

import "encoding/binary"

// Assembler builds SPIR-V modules word by word. Instructions are emitted in
// call order, so callers are responsible for the logical module layout
// (debug names, then annotations, then types and globals).
type Assembler struct {
	Version Version
	words   []uint32
	next    ID
}

// NewAssembler returns an assembler targeting SPIR-V 1.0.
func NewAssembler() *Assembler {
	return &Assembler{Version: Version{Major: 1, Minor: 0}, next: 1}
}

// ID allocates a fresh result id.
func (a *Assembler) ID() ID {
	id := a.next
	a.next++
	return id
}

// Emit appends one instruction with raw operand words.
func (a *Assembler) Emit(op OpCode, operands ...uint32) {
	a.words = append(a.words, uint32(len(operands)+1)<<16|uint32(op))
	a.words = append(a.words, operands...)
}

// Name emits OpName.
func (a *Assembler) Name(id ID, name string) {
	a.Emit(OpName, append([]uint32{uint32(id)}, EncodeString(name)...)...)
}

// Decorate emits OpDecorate with optional literal arguments.
func (a *Assembler) Decorate(id ID, d Decoration, args ...uint32) {
	a.Emit(OpDecorate, append([]uint32{uint32(id), uint32(d)}, args...)...)
}

// TypeBool emits OpTypeBool.
func (a *Assembler) TypeBool() ID {
	id := a.ID()
	a.Emit(OpTypeBool, uint32(id))
	return id
}

// TypeInt emits OpTypeInt.
func (a *Assembler) TypeInt(width uint32, signed bool) ID {
	id := a.ID()
	var s uint32
	if signed {
		s = 1
	}
	a.Emit(OpTypeInt, uint32(id), width, s)
	return id
}

// TypeFloat emits OpTypeFloat.
func (a *Assembler) TypeFloat(width uint32) ID {
	id := a.ID()
	a.Emit(OpTypeFloat, uint32(id), width)
	return id
}

// TypeVector emits OpTypeVector.
func (a *Assembler) TypeVector(component ID, n uint32) ID {
	id := a.ID()
	a.Emit(OpTypeVector, uint32(id), uint32(component), n)
	return id
}

// TypeMatrix emits OpTypeMatrix.
func (a *Assembler) TypeMatrix(column ID, n uint32) ID {
	id := a.ID()
	a.Emit(OpTypeMatrix, uint32(id), uint32(column), n)
	return id
}

// TypeArray emits OpTypeArray.
func (a *Assembler) TypeArray(elem, length ID) ID {
	id := a.ID()
	a.Emit(OpTypeArray, uint32(id), uint32(elem), uint32(length))
	return id
}

// TypeImage emits a 2D sampled float OpTypeImage.
func (a *Assembler) TypeImage(sampled ID) ID {
	id := a.ID()
	// Dim 2D, no depth, not arrayed, single sampled, sampled, Unknown format.
	a.Emit(OpTypeImage, uint32(id), uint32(sampled), 1, 0, 0, 0, 1, 0)
	return id
}

// TypeSampledImage emits OpTypeSampledImage.
func (a *Assembler) TypeSampledImage(image ID) ID {
	id := a.ID()
	a.Emit(OpTypeSampledImage, uint32(id), uint32(image))
	return id
}

// TypeStruct emits OpTypeStruct.
func (a *Assembler) TypeStruct(members ...ID) ID {
	id := a.ID()
	ops := []uint32{uint32(id)}
	for _, m := range members {
		ops = append(ops, uint32(m))
	}
	a.Emit(OpTypeStruct, ops...)
	return id
}

// TypePointer emits OpTypePointer.
func (a *Assembler) TypePointer(class StorageClass, pointee ID) ID {
	id := a.ID()
	a.Emit(OpTypePointer, uint32(id), uint32(class), uint32(pointee))
	return id
}

// Constant emits a single-word OpConstant.
func (a *Assembler) Constant(typ ID, value uint32) ID {
	id := a.ID()
	a.Emit(OpConstant, uint32(typ), uint32(id), value)
	return id
}

// Variable emits a global OpVariable.
func (a *Assembler) Variable(pointer ID, class StorageClass) ID {
	id := a.ID()
	a.Emit(OpVariable, uint32(pointer), uint32(id), uint32(class))
	return id
}

// Words returns the module, header included.
func (a *Assembler) Words() []uint32 {
	header := []uint32{
		MagicNumber,
		uint32(a.Version.Major)<<16 | uint32(a.Version.Minor)<<8,
		0,
		uint32(a.next),
		0,
	}
	return append(header, a.words...)
}

// Bytes returns the module as little-endian bytes.
func (a *Assembler) Bytes() []byte {
	words := a.Words()
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// EncodeString packs s as a nul-terminated literal string.
func EncodeString(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words
}
