package spirv

import "fmt"

// OperandKind tags the meaning of an operand word.
type OperandKind uint8

// Operand kinds. KindNone is returned for operands past the end of an instruction.
const (
	KindNone OperandKind = iota
	KindLiteral
	KindID
	KindDecoration
	KindStorageClass
	KindString
)

// Operand is one typed operand of an instruction.
type Operand struct {
	Kind OperandKind
	Word uint32
	Str  string
}

// ID returns the operand as an id reference.
func (o Operand) ID() (ID, bool) {
	return ID(o.Word), o.Kind == KindID
}

// Literal returns the operand as a literal integer word.
func (o Operand) Literal() (uint32, bool) {
	return o.Word, o.Kind == KindLiteral
}

// Decoration returns the operand as a decoration tag.
func (o Operand) Decoration() (Decoration, bool) {
	return Decoration(o.Word), o.Kind == KindDecoration
}

// StorageClass returns the operand as a storage class tag.
func (o Operand) StorageClass() (StorageClass, bool) {
	return StorageClass(o.Word), o.Kind == KindStorageClass
}

// Text returns the operand as a literal string.
func (o Operand) Text() (string, bool) {
	return o.Str, o.Kind == KindString
}

// Instruction is a decoded instruction. Result type and result id are split
// out of the operand list; they are zero when the opcode has none.
type Instruction struct {
	Opcode     OpCode
	ResultType ID
	ResultID   ID
	Operands   []Operand
}

// Operand returns operand i, or a KindNone operand when out of range.
func (ins Instruction) Operand(i int) Operand {
	if i < 0 || i >= len(ins.Operands) {
		return Operand{}
	}
	return ins.Operands[i]
}

func (ins Instruction) String() string {
	s := ins.Opcode.String()
	if ins.ResultID != 0 {
		s = fmt.Sprintf("%%%d = %s", ins.ResultID, s)
	}
	if ins.ResultType != 0 {
		s += fmt.Sprintf(" %%%d", ins.ResultType)
	}
	for _, op := range ins.Operands {
		switch op.Kind {
		case KindID:
			s += fmt.Sprintf(" %%%d", op.Word)
		case KindString:
			s += fmt.Sprintf(" %q", op.Str)
		case KindDecoration:
			s += " " + Decoration(op.Word).String()
		case KindStorageClass:
			s += " " + StorageClass(op.Word).String()
		default:
			s += fmt.Sprintf(" %d", op.Word)
		}
	}
	return s
}

// layout describes the operand grammar of one opcode. Words past the fixed
// operands are decoded as rest (KindLiteral when unset).
type layout struct {
	resultType bool
	resultID   bool
	operands   []OperandKind
	rest       OperandKind
}

var layouts = map[OpCode]layout{
	OpName:              {operands: []OperandKind{KindID, KindString}},
	OpMemberName:        {operands: []OperandKind{KindID, KindLiteral, KindString}},
	OpString:            {resultID: true, operands: []OperandKind{KindString}},
	OpExtInstImport:     {resultID: true, operands: []OperandKind{KindString}},
	OpEntryPoint:        {operands: []OperandKind{KindLiteral, KindID, KindString}, rest: KindID},
	OpDecorate:          {operands: []OperandKind{KindID, KindDecoration}},
	OpMemberDecorate:    {operands: []OperandKind{KindID, KindLiteral, KindDecoration}},
	OpTypeVoid:          {resultID: true},
	OpTypeBool:          {resultID: true},
	OpTypeSampler:       {resultID: true},
	OpTypeInt:           {resultID: true, operands: []OperandKind{KindLiteral, KindLiteral}},
	OpTypeFloat:         {resultID: true, operands: []OperandKind{KindLiteral}},
	OpTypeVector:        {resultID: true, operands: []OperandKind{KindID, KindLiteral}},
	OpTypeMatrix:        {resultID: true, operands: []OperandKind{KindID, KindLiteral}},
	OpTypeImage:         {resultID: true, operands: []OperandKind{KindID}},
	OpTypeSampledImage:  {resultID: true, operands: []OperandKind{KindID}},
	OpTypeArray:         {resultID: true, operands: []OperandKind{KindID, KindID}},
	OpTypeRuntimeArray:  {resultID: true, operands: []OperandKind{KindID}},
	OpTypeStruct:        {resultID: true, rest: KindID},
	OpTypePointer:       {resultID: true, operands: []OperandKind{KindStorageClass, KindID}},
	OpTypeFunction:      {resultID: true, rest: KindID},
	OpConstantTrue:      {resultType: true, resultID: true},
	OpConstantFalse:     {resultType: true, resultID: true},
	OpConstant:          {resultType: true, resultID: true},
	OpSpecConstant:      {resultType: true, resultID: true},
	OpConstantComposite: {resultType: true, resultID: true, rest: KindID},
	OpVariable:          {resultType: true, resultID: true, operands: []OperandKind{KindStorageClass}, rest: KindID},
	OpFunction:          {resultType: true, resultID: true, operands: []OperandKind{KindLiteral, KindID}},
	OpLoad:              {resultType: true, resultID: true, operands: []OperandKind{KindID}},
	OpStore:             {operands: []OperandKind{KindID, KindID}},
	OpLabel:             {resultID: true},
}
