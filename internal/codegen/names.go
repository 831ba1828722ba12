package codegen

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// BaseName identifies a shader by its file name with dots replaced, so
// basic.vert and basic.frag stay distinct.
func BaseName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// WrapperFile is the file name of the wrapper generated for name.
func WrapperFile(name string) string {
	return BaseName(name) + ".go"
}

// ShaderType is the handle type generated for name.
func ShaderType(name string) string {
	return strcase.ToCamel(BaseName(name)) + "Shader"
}

// HolderType is the uniform holder type generated for name.
func HolderType(name string) string {
	return strcase.ToCamel(BaseName(name)) + "Uniforms"
}

// SlotField is the holder field of a uniform.
func SlotField(uniform string) string {
	return strcase.ToLowerCamel(uniform) + "Location"
}

// Setter is the setter method of a uniform.
func Setter(uniform string) string {
	return "Set" + strcase.ToCamel(uniform)
}

func assetVar(name string, mode Mode) string {
	base := strcase.ToLowerCamel(BaseName(name))
	if mode == ReflectedBinary {
		return base + "Binary"
	}
	return base + "Source"
}
