package codegen

import "text/template"

var wrapperTmpl = template.Must(template.New("wrapper").Parse(`// Code generated by shaderbind from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	_ "embed"

{{range .Imports}}	"{{.}}"
{{end}})

// {{.AssetVar}} is the {{if .Binary}}SPIR-V module{{else}}GLSL source{{end}} of {{.Source}}.
//
//go:embed {{.Asset}}
var {{.AssetVar}} {{if .Binary}}[]byte{{else}}string{{end}}

// {{.Type}} is the {{.Stage}} shader {{.Source}}.
type {{.Type}} struct{}

// Kind returns the shader stage.
func ({{.Type}}) Kind() glshader.Kind { return glshader.{{.KindConst}} }
{{if .Binary}}
// Binary returns the SPIR-V module.
func ({{.Type}}) Binary() []byte { return {{.AssetVar}} }
{{else}}
// Source returns the GLSL source.
func ({{.Type}}) Source() string { return {{.AssetVar}} }
{{end}}
// {{.Holder}} holds the uniform locations of {{.Source}}.
type {{.Holder}} struct {
{{range .Fields}}	{{.Field}} glshader.Slot {{.Tag}}
{{end}}}

// New{{.Holder}} resolves the uniform locations of {{.Source}}{{if not .Binary}} in program{{end}}.
func New{{.Holder}}(program uint32) *{{.Holder}} {
	return &{{.Holder}}{
{{range .Fields}}		{{.Field}}: {{.Init}},
{{end}}	}
}
{{range .Fields}}
// {{.Setter}} uploads {{.Name}} ({{.GLSLType}}).
func (u *{{$.Holder}}) {{.Setter}}({{.Params}}) {
	u.{{.Field}}.{{.Method}}({{.Args}})
}
{{end}}`))

var manifestTmpl = template.Must(template.New("manifest").Parse(`// Code generated by shaderbind. DO NOT EDIT.

package {{.Package}}

import "{{.Runtime}}"

// Shaders lists the generated shaders in registration order.
var Shaders = []glshader.Shader{
{{range .Entries}}	{{.Type}}{}, // {{.Source}}
{{end}}}
`))
