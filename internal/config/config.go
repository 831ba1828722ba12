// Package config handles shaderbind configuration loading and management.
package config

import "runtime"

// Config holds all generator settings.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Compiler CompilerConfig `yaml:"compiler"`
	Build    BuildConfig    `yaml:"build"`
	Shaders  []string       `yaml:"shaders,omitempty"` // Shader paths or glob patterns, in registration order
	Logging  LoggingConfig  `yaml:"logging"`
}

// OutputConfig controls where generated files go.
type OutputConfig struct {
	Dest    string `yaml:"dest"`
	Package string `yaml:"package"`
}

// CompilerConfig locates the external tools.
type CompilerConfig struct {
	Glslang        string   `yaml:"glslang"`
	GlslangArgs    string   `yaml:"glslang_args,omitempty"`
	SPIRVCross     string   `yaml:"spirv_cross"`
	SPIRVCrossArgs string   `yaml:"spirv_cross_args,omitempty"`
	IncludeDirs    []string `yaml:"include_dirs,omitempty"`
}

// BuildConfig selects the target and batch behavior.
type BuildConfig struct {
	Target      string `yaml:"target"`       // auto, spirv or glsl
	GLSLVersion string `yaml:"glsl_version"` // e.g. "460" or "300 es"
	SkipSPIRV   bool   `yaml:"skip_spirv"`
	WASM        bool   `yaml:"wasm"` // Also enabled by GOARCH=wasm
	Quiet       bool   `yaml:"quiet"`
	Jobs        int    `yaml:"jobs"`
	KeepGoing   bool   `yaml:"keep_going"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dest:    "",
			Package: "shaders",
		},
		Compiler: CompilerConfig{
			Glslang:    "glslangValidator",
			SPIRVCross: "spirv-cross",
		},
		Build: BuildConfig{
			Target: "auto",
			Jobs:   runtime.NumCPU(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
