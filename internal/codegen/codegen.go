// Package codegen emits typed Go bindings for reflected shader uniforms.
//
// Every shader gets one wrapper file declaring a handle type that embeds the
// shader asset, a holder type with one glshader.Slot per uniform, a
// constructor resolving those slots and one setter per uniform. A manifest
// file lists all handles in registration order.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/Faultbox/shaderbind/internal/reflect"
	"github.com/Faultbox/shaderbind/internal/shaderkind"
	"github.com/Faultbox/shaderbind/internal/shadertype"
)

// DefaultRuntimeImport is the import path of the runtime package generated
// code targets. Its package name must be glshader.
const DefaultRuntimeImport = "github.com/Faultbox/shaderbind/pkg/glshader"

// ManifestFile is the file name of the aggregate manifest.
const ManifestFile = "shaders.go"

// Generator errors.
var (
	// ErrDuplicateName is returned when two uniforms or two shaders map to
	// the same Go identifier.
	ErrDuplicateName = errors.New("duplicate generated name")
	// ErrUnresolved is returned for a uniform without a type.
	ErrUnresolved = errors.New("unresolved uniform")
	// ErrInvalidPackage is returned when the package name is not an identifier.
	ErrInvalidPackage = errors.New("invalid package name")
)

// Mode selects the embedded asset and how locations are obtained.
type Mode uint8

const (
	// ReflectedBinary embeds a SPIR-V module and uses reflected locations.
	ReflectedBinary Mode = iota
	// SourceLookup embeds GLSL source and looks locations up by name.
	SourceLookup
)

func (m Mode) String() string {
	switch m {
	case ReflectedBinary:
		return "reflected-binary"
	case SourceLookup:
		return "source-lookup"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Shader is the input of Wrapper.
type Shader struct {
	// Name is the source file name, e.g. "basic.vert".
	Name string
	Kind shaderkind.Info
	Mode Mode
	// Asset is the embedded file name, relative to the wrapper.
	Asset    string
	Package  string
	Uniforms []reflect.Uniform
}

// Entry is one manifest line.
type Entry struct {
	Source string
	Type   string
}

// EntryFor returns the manifest entry of the shader source file name.
func EntryFor(name string) Entry {
	return Entry{Source: name, Type: ShaderType(name)}
}

// Generator renders wrapper and manifest files.
type Generator struct {
	// RuntimeImport is the import path of the glshader package.
	RuntimeImport string
}

// New returns a Generator targeting DefaultRuntimeImport.
func New() *Generator {
	return &Generator{RuntimeImport: DefaultRuntimeImport}
}

// Wrapper renders the wrapper file of s.
func (g *Generator) Wrapper(s Shader) ([]byte, error) {
	data, err := g.wrapperData(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	return render(wrapperTmpl, WrapperFile(s.Name), data)
}

// Manifest renders the manifest listing entries in the given order.
func (g *Generator) Manifest(pkg string, entries []Entry) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, pkg)
	}
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.Type]; ok {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", ErrDuplicateName, prev, e.Source, e.Type)
		}
		seen[e.Type] = e.Source
	}

	data := manifestData{
		Package: pkg,
		Runtime: g.runtimeImport(),
		Entries: entries,
	}
	return render(manifestTmpl, ManifestFile, data)
}

func (g *Generator) runtimeImport() string {
	if g.RuntimeImport == "" {
		return DefaultRuntimeImport
	}
	return g.RuntimeImport
}

type wrapperData struct {
	Source    string
	Package   string
	Stage     string
	KindConst string
	Binary    bool
	Asset     string
	AssetVar  string
	Type      string
	Holder    string
	Imports   []string
	Fields    []fieldData
}

type fieldData struct {
	Name     string
	GLSLType string
	Field    string
	Tag      string
	Init     string
	Setter   string
	Params   string
	Method   string
	Args     string
}

type manifestData struct {
	Package string
	Runtime string
	Entries []Entry
}

func (g *Generator) wrapperData(s Shader) (*wrapperData, error) {
	if !token.IsIdentifier(s.Package) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, s.Package)
	}

	d := &wrapperData{
		Source:    s.Name,
		Package:   s.Package,
		Stage:     s.Kind.Kind.String(),
		KindConst: s.Kind.Const,
		Binary:    s.Mode == ReflectedBinary,
		Asset:     s.Asset,
		AssetVar:  assetVar(s.Name, s.Mode),
		Type:      ShaderType(s.Name),
		Holder:    HolderType(s.Name),
	}

	imps := map[string]bool{g.runtimeImport(): true}
	setters := make(map[string]string, len(s.Uniforms))
	fields := make(map[string]string, len(s.Uniforms))

	for _, u := range s.Uniforms {
		if u.Type == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnresolved, u.Name)
		}
		f := newField(u, d.Binary)
		if prev, ok := setters[f.Setter]; ok {
			return nil, fmt.Errorf("%w: uniforms %s and %s both map to %s", ErrDuplicateName, prev, u.Name, f.Setter)
		}
		if prev, ok := fields[f.Field]; ok {
			return nil, fmt.Errorf("%w: uniforms %s and %s both map to %s", ErrDuplicateName, prev, u.Name, f.Field)
		}
		setters[f.Setter] = u.Name
		fields[f.Field] = u.Name

		for _, imp := range shadertype.HostImports(u.Type) {
			imps[imp] = true
		}
		d.Fields = append(d.Fields, f)
	}

	for imp := range imps {
		d.Imports = append(d.Imports, imp)
	}
	sort.Strings(d.Imports)
	return d, nil
}

func newField(u reflect.Uniform, binary bool) fieldData {
	up := shadertype.UploadSelector(u.Type)
	params := "value " + shadertype.HostValueType(u.Type)
	for _, e := range up.Extra {
		params += ", " + e.Name + " " + e.Type
	}

	f := fieldData{
		Name:     u.Name,
		GLSLType: shadertype.TypeName(u.Type),
		Field:    SlotField(u.Name),
		Tag:      fmt.Sprintf("`glsl:%q`", u.Name),
		Setter:   Setter(u.Name),
		Params:   params,
		Method:   up.Method(),
		Args:     up.Args(u.Type, "value"),
	}
	switch {
	case !binary:
		f.Init = fmt.Sprintf("glshader.Lookup(program, %q)", u.Name)
	case u.HasLocation():
		f.Init = fmt.Sprintf("glshader.Fixed(%d)", u.Location)
	default:
		f.Init = "glshader.Slot{}"
	}
	return f
}

func render(t *template.Template, filename string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", t.Name(), err)
	}
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return out, nil
}
