package config

import (
	"flag"
	"os"
)

type flagValues struct {
	config      string
	debug       bool
	dest        string
	pkg         string
	target      string
	glslVersion string
	skipSPIRV   bool
	quiet       bool
	jobs        int
	keepGoing   bool
}

// newFlagSet declares the generate flags.
func newFlagSet() (*flag.FlagSet, *flagValues) {
	f := &flagValues{}
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&f.config, "config", "", "Path to config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.dest, "dest", "", "Output directory")
	fs.StringVar(&f.pkg, "package", "", "Package name of generated files")
	fs.StringVar(&f.target, "target", "", "Target: auto, spirv or glsl")
	fs.StringVar(&f.glslVersion, "glsl-version", "", "GLSL version for the glsl target (e.g. 460, \"300 es\")")
	fs.BoolVar(&f.skipSPIRV, "skip-spirv", false, "Preprocess only, embed GLSL without reflection")
	fs.BoolVar(&f.quiet, "quiet", false, "Suppress rerun-if-changed notifications")
	fs.IntVar(&f.jobs, "j", 0, "Shaders compiled in parallel")
	fs.BoolVar(&f.keepGoing, "keep-going", false, "Continue after a shader fails")

	return fs, f
}

// Usage prints the generate flags.
func Usage() {
	fs, _ := newFlagSet()
	fs.PrintDefaults()
}

// applyFlags applies CLI flag overrides to the config. Only flags given on
// the command line override, so -skip-spirv=false beats the file.
func applyFlags(cfg *Config, fs *flag.FlagSet, f *flagValues) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		case "dest":
			cfg.Output.Dest = f.dest
		case "package":
			cfg.Output.Package = f.pkg
		case "target":
			cfg.Build.Target = f.target
		case "glsl-version":
			cfg.Build.GLSLVersion = f.glslVersion
		case "skip-spirv":
			cfg.Build.SkipSPIRV = f.skipSPIRV
		case "quiet":
			cfg.Build.Quiet = f.quiet
		case "j":
			if f.jobs > 0 {
				cfg.Build.Jobs = f.jobs
			}
		case "keep-going":
			cfg.Build.KeepGoing = f.keepGoing
		}
	})
}
