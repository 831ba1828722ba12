package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Decoding errors.
var (
	ErrInvalidMagic       = errors.New("invalid SPIR-V magic number")
	ErrTruncated          = errors.New("truncated SPIR-V data")
	ErrInvalidInstruction = errors.New("invalid SPIR-V instruction")
)

// Version is the SPIR-V version declared in the module header.
type Version struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Module is a decoded SPIR-V module.
type Module struct {
	Version      Version
	Generator    uint32
	Bound        uint32
	Instructions []Instruction
}

// Decode decodes a SPIR-V binary. Both byte orders are accepted; the order
// is detected from the magic number.
func Decode(data []byte) (*Module, error) {
	if len(data) < headerWords*4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: size %d is not a multiple of 4", ErrTruncated, len(data))
	}

	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == MagicNumber:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == MagicNumber:
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, binary.LittleEndian.Uint32(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}
	return DecodeWords(words)
}

// DecodeFile decodes a SPIR-V binary from disk.
func DecodeFile(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading SPIR-V file: %w", err)
	}
	return Decode(data)
}

// DecodeWords decodes a module already split into host-order words.
func DecodeWords(words []uint32) (*Module, error) {
	if len(words) < headerWords {
		return nil, fmt.Errorf("%w: %d words", ErrTruncated, len(words))
	}
	if words[0] != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, words[0])
	}

	m := &Module{
		Version: Version{
			Major: uint8(words[1] >> 16),
			Minor: uint8(words[1] >> 8),
		},
		Generator: words[2],
		Bound:     words[3],
	}

	for i := headerWords; i < len(words); {
		count := int(words[i] >> 16)
		op := OpCode(words[i] & 0xffff)
		if count == 0 {
			return nil, fmt.Errorf("%w: zero word count for %s at word %d", ErrInvalidInstruction, op, i)
		}
		if i+count > len(words) {
			return nil, fmt.Errorf("%w: %s at word %d needs %d words", ErrTruncated, op, i, count)
		}

		ins, err := decodeInstruction(op, words[i+1:i+count])
		if err != nil {
			return nil, fmt.Errorf("decoding %s at word %d: %w", op, i, err)
		}
		m.Instructions = append(m.Instructions, ins)
		i += count
	}

	return m, nil
}

// decodeInstruction splits the operand words of one instruction using the
// opcode's grammar.
func decodeInstruction(op OpCode, words []uint32) (Instruction, error) {
	ins := Instruction{Opcode: op}
	l := layouts[op]

	if l.resultType {
		if len(words) == 0 {
			return ins, fmt.Errorf("%w: missing result type", ErrInvalidInstruction)
		}
		ins.ResultType = ID(words[0])
		words = words[1:]
	}
	if l.resultID {
		if len(words) == 0 {
			return ins, fmt.Errorf("%w: missing result id", ErrInvalidInstruction)
		}
		ins.ResultID = ID(words[0])
		words = words[1:]
	}

	for _, kind := range l.operands {
		if len(words) == 0 {
			// Trailing operands are optional in several grammars.
			break
		}
		if kind == KindString {
			s, n, err := decodeString(words)
			if err != nil {
				return ins, err
			}
			ins.Operands = append(ins.Operands, Operand{Kind: KindString, Str: s})
			words = words[n:]
			continue
		}
		ins.Operands = append(ins.Operands, Operand{Kind: kind, Word: words[0]})
		words = words[1:]
	}

	rest := l.rest
	if rest == KindNone {
		rest = KindLiteral
	}
	for _, w := range words {
		ins.Operands = append(ins.Operands, Operand{Kind: rest, Word: w})
	}

	return ins, nil
}

// decodeString reads a nul-terminated UTF-8 literal packed into words and
// returns it with the number of words consumed.
func decodeString(words []uint32) (string, int, error) {
	var sb strings.Builder
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return sb.String(), i + 1, nil
			}
			sb.WriteByte(b)
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated string literal", ErrInvalidInstruction)
}
