// Package reflect recovers uniform metadata from a decoded SPIR-V module.
//
// Reflection runs three passes over the instruction stream. Each pass
// returns the table the next one reads:
//
//	collectTypes     constants, types and pointer types    -> typeTable
//	collectNames     debug names, Location/Binding         -> nameTable
//	resolveVariables UniformConstant variables             -> typed records
//
// Passes rely on the SPIR-V logical layout: component types precede the
// composites built from them, and debug names precede annotations.
package reflect

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/shaderbind/internal/shadertype"
	"github.com/Faultbox/shaderbind/internal/spirv"
)

// Reflection errors.
var (
	// ErrUnsupportedType aborts reflection of the whole module.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrUnknownID is wrapped together with ErrUnsupportedType when a
	// Location or Binding decoration targets an id without a debug name.
	ErrUnknownID = errors.New("decoration references an unnamed id")
)

// NoLocation marks a uniform without a Location decoration.
const NoLocation int32 = -1

// Uniform describes one reflected uniform.
type Uniform struct {
	ID       spirv.ID
	Name     string
	Location int32
	Binding  *int32
	Type     shadertype.Type
}

// HasLocation reports whether a Location decoration was seen.
func (u Uniform) HasLocation() bool {
	return u.Location != NoLocation
}

// Diagnostic is a non-fatal reflection problem. The uniform it names is
// left out of the result.
type Diagnostic struct {
	ID      spirv.ID
	Name    string
	Message string
}

func (d Diagnostic) String() string {
	if d.Name == "" {
		return fmt.Sprintf("%%%d: %s", d.ID, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Name, d.Message)
}

// Result is the output of Reflect.
type Result struct {
	Uniforms    []Uniform
	Diagnostics []Diagnostic
}

// Reflect returns the uniforms declared in instrs, sorted by location.
func Reflect(instrs []spirv.Instruction) (*Result, error) {
	types, err := collectTypes(instrs)
	if err != nil {
		return nil, err
	}

	names, err := collectNames(instrs)
	if err != nil {
		return nil, err
	}

	diags := resolveVariables(instrs, types, names)

	res := &Result{
		Diagnostics: append(types.diagnostics, diags...),
	}
	for _, id := range names.order {
		u := names.records[id]
		if u.Type == nil {
			continue
		}
		res.Uniforms = append(res.Uniforms, *u)
	}
	sort.SliceStable(res.Uniforms, func(i, j int) bool {
		return res.Uniforms[i].Location < res.Uniforms[j].Location
	})

	return res, nil
}

// ReflectModule reflects a decoded module.
func ReflectModule(m *spirv.Module) (*Result, error) {
	return Reflect(m.Instructions)
}

// ReflectBinary decodes and reflects a SPIR-V binary.
func ReflectBinary(data []byte) (*Result, error) {
	m, err := spirv.Decode(data)
	if err != nil {
		return nil, err
	}
	return Reflect(m.Instructions)
}
