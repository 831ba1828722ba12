// Package spirv decodes SPIR-V binaries into a flat instruction stream.
//
// Only the operand grammar needed for uniform reflection is modelled: type
// declarations, constants, debug names, decorations and global variables.
// Operands of every other instruction are kept as raw literal words.
package spirv

import "fmt"

// MagicNumber is the first word of every SPIR-V module.
const MagicNumber uint32 = 0x07230203

// headerWords is the size of the module header in words.
const headerWords = 5

// ID is a SPIR-V result id. Zero means "no id".
type ID uint32

// OpCode identifies a SPIR-V instruction.
type OpCode uint16

// Instruction opcodes.
const (
	OpNop               OpCode = 0
	OpSource            OpCode = 3
	OpSourceExtension   OpCode = 4
	OpName              OpCode = 5
	OpMemberName        OpCode = 6
	OpString            OpCode = 7
	OpExtension         OpCode = 10
	OpExtInstImport     OpCode = 11
	OpMemoryModel       OpCode = 14
	OpEntryPoint        OpCode = 15
	OpExecutionMode     OpCode = 16
	OpCapability        OpCode = 17
	OpTypeVoid          OpCode = 19
	OpTypeBool          OpCode = 20
	OpTypeInt           OpCode = 21
	OpTypeFloat         OpCode = 22
	OpTypeVector        OpCode = 23
	OpTypeMatrix        OpCode = 24
	OpTypeImage         OpCode = 25
	OpTypeSampler       OpCode = 26
	OpTypeSampledImage  OpCode = 27
	OpTypeArray         OpCode = 28
	OpTypeRuntimeArray  OpCode = 29
	OpTypeStruct        OpCode = 30
	OpTypePointer       OpCode = 32
	OpTypeFunction      OpCode = 33
	OpConstantTrue      OpCode = 41
	OpConstantFalse     OpCode = 42
	OpConstant          OpCode = 43
	OpConstantComposite OpCode = 44
	OpSpecConstant      OpCode = 50
	OpFunction          OpCode = 54
	OpFunctionEnd       OpCode = 56
	OpVariable          OpCode = 59
	OpLoad              OpCode = 61
	OpStore             OpCode = 62
	OpDecorate          OpCode = 71
	OpMemberDecorate    OpCode = 72
	OpLabel             OpCode = 248
	OpReturn            OpCode = 253
)

var opNames = map[OpCode]string{
	OpNop: "OpNop", OpSource: "OpSource", OpSourceExtension: "OpSourceExtension",
	OpName: "OpName", OpMemberName: "OpMemberName", OpString: "OpString",
	OpExtension: "OpExtension", OpExtInstImport: "OpExtInstImport",
	OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint",
	OpExecutionMode: "OpExecutionMode", OpCapability: "OpCapability",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector", OpTypeMatrix: "OpTypeMatrix",
	OpTypeImage: "OpTypeImage", OpTypeSampler: "OpTypeSampler",
	OpTypeSampledImage: "OpTypeSampledImage", OpTypeArray: "OpTypeArray",
	OpTypeRuntimeArray: "OpTypeRuntimeArray", OpTypeStruct: "OpTypeStruct",
	OpTypePointer: "OpTypePointer", OpTypeFunction: "OpTypeFunction",
	OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse",
	OpConstant: "OpConstant", OpConstantComposite: "OpConstantComposite",
	OpSpecConstant: "OpSpecConstant", OpFunction: "OpFunction",
	OpFunctionEnd: "OpFunctionEnd", OpVariable: "OpVariable", OpLoad: "OpLoad",
	OpStore: "OpStore", OpDecorate: "OpDecorate", OpMemberDecorate: "OpMemberDecorate",
	OpLabel: "OpLabel", OpReturn: "OpReturn",
}

// String returns the opcode mnemonic.
func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// Decoration is a SPIR-V decoration kind.
type Decoration uint32

// Decorations.
const (
	DecorationBlock         Decoration = 2
	DecorationRowMajor      Decoration = 4
	DecorationColMajor      Decoration = 5
	DecorationArrayStride   Decoration = 6
	DecorationMatrixStride  Decoration = 7
	DecorationBuiltIn       Decoration = 11
	DecorationLocation      Decoration = 30
	DecorationComponent     Decoration = 31
	DecorationIndex         Decoration = 32
	DecorationBinding       Decoration = 33
	DecorationDescriptorSet Decoration = 34
	DecorationOffset        Decoration = 35
)

func (d Decoration) String() string {
	switch d {
	case DecorationBlock:
		return "Block"
	case DecorationRowMajor:
		return "RowMajor"
	case DecorationColMajor:
		return "ColMajor"
	case DecorationArrayStride:
		return "ArrayStride"
	case DecorationMatrixStride:
		return "MatrixStride"
	case DecorationBuiltIn:
		return "BuiltIn"
	case DecorationLocation:
		return "Location"
	case DecorationComponent:
		return "Component"
	case DecorationIndex:
		return "Index"
	case DecorationBinding:
		return "Binding"
	case DecorationDescriptorSet:
		return "DescriptorSet"
	case DecorationOffset:
		return "Offset"
	default:
		return fmt.Sprintf("Decoration(%d)", uint32(d))
	}
}

// StorageClass tells where a variable lives.
type StorageClass uint32

// Storage classes.
const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassPushConstant    StorageClass = 9
	StorageClassStorageBuffer   StorageClass = 12
)

func (s StorageClass) String() string {
	switch s {
	case StorageClassUniformConstant:
		return "UniformConstant"
	case StorageClassInput:
		return "Input"
	case StorageClassUniform:
		return "Uniform"
	case StorageClassOutput:
		return "Output"
	case StorageClassWorkgroup:
		return "Workgroup"
	case StorageClassPrivate:
		return "Private"
	case StorageClassFunction:
		return "Function"
	case StorageClassPushConstant:
		return "PushConstant"
	case StorageClassStorageBuffer:
		return "StorageBuffer"
	default:
		return fmt.Sprintf("StorageClass(%d)", uint32(s))
	}
}
