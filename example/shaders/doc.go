// Package shaders holds the bindings generated for the sample shaders in
// glsl/. Regenerate them with go generate; glslangValidator and
// spirv-cross must be on PATH.
package shaders

//go:generate go run github.com/Faultbox/shaderbind/cmd/shaderbind generate -config shaderbind.yaml
