// shaderbind compiles GLSL shaders and generates typed Go bindings for
// their uniforms.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/shaderbind/internal/compiler"
	"github.com/Faultbox/shaderbind/internal/config"
	"github.com/Faultbox/shaderbind/internal/logger"
	"github.com/Faultbox/shaderbind/internal/reflect"
	"github.com/Faultbox/shaderbind/internal/shadertype"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		os.Exit(cmdGenerate(args))
	case "reflect":
		os.Exit(cmdReflect(args))
	case "init":
		os.Exit(cmdInit(args))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shaderbind - typed Go bindings for GLSL shaders

Usage:
  shaderbind <command> [options]

Commands:
  generate [flags] [shaders...]   Compile shaders and write bindings
  reflect <file.spv>              List the uniforms of a SPIR-V binary
  init [-global] [path]           Write a default shaderbind.yaml

Examples:
  shaderbind generate -dest internal/shaders glsl/*.vert glsl/*.frag
  shaderbind generate -target glsl -glsl-version "300 es"
  shaderbind reflect basic.vert.spv

Generate flags:`)
	config.Usage()
}

func cmdGenerate(args []string) int {
	cfg, rest, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	target, err := compiler.ParseTarget(cfg.Build.Target, cfg.Build.GLSLVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	frontend, err := compiler.NewGlslang(cfg.Compiler.Glslang, cfg.Compiler.GlslangArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: glslang args: %v\n", err)
		return 2
	}
	cross, err := compiler.NewSPIRVCross(cfg.Compiler.SPIRVCross, cfg.Compiler.SPIRVCrossArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: spirv-cross args: %v\n", err)
		return 2
	}

	c, err := compiler.New(compiler.Options{
		Dest:        cfg.Output.Dest,
		Package:     cfg.Output.Package,
		Target:      target,
		SkipSPIRV:   cfg.Build.SkipSPIRV,
		WASM:        cfg.Build.WASM || compiler.DetectWASM(),
		Quiet:       cfg.Build.Quiet,
		IncludeDirs: cfg.Compiler.IncludeDirs,
		Frontend:    frontend,
		Cross:       cross,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	paths, err := cfg.ShaderPaths(rest...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no shaders given")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("generating bindings",
		zap.Int("shaders", len(paths)),
		zap.Stringer("target", c.Target()),
		zap.String("dest", cfg.Output.Dest))

	if err := c.WrapAll(ctx, paths, cfg.Build.Jobs, cfg.Build.KeepGoing); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := c.WriteManifest(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func cmdReflect(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shaderbind reflect <file.spv>")
		return 1
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	res, err := reflect.ReflectBinary(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", filepath.Base(args[0]), err)
		return 1
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLOCATION\tBINDING\tTYPE")
	for _, u := range res.Uniforms {
		loc, binding := "-", "-"
		if u.HasLocation() {
			loc = strconv.Itoa(int(u.Location))
		}
		if u.Binding != nil {
			binding = strconv.Itoa(int(*u.Binding))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Name, loc, binding, shadertype.TypeName(u.Type))
	}
	w.Flush()

	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}
	return 0
}

func cmdInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	global := fs.Bool("global", false, "Write to the user config directory")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.Default()
	if *global {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return 0
	}

	path := config.FileName
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		return 1
	}
	if err := cfg.SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Wrote %s\n", path)
	return 0
}
