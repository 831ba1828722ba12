package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// CompileError reports a shader the front end refused to compile.
type CompileError struct {
	Path  string
	Count int
	Log   string
}

func (e *CompileError) Error() string {
	if e.Count == 1 {
		return fmt.Sprintf("%s: 1 compilation error", e.Path)
	}
	return fmt.Sprintf("%s: %d compilation errors", e.Path, e.Count)
}

// Request is one front end invocation.
type Request struct {
	Path        string
	Stage       string
	IncludeDirs []string
}

// Frontend turns GLSL into SPIR-V or preprocessed GLSL.
type Frontend interface {
	CompileSPIRV(ctx context.Context, req Request) ([]byte, error)
	Preprocess(ctx context.Context, req Request) (string, error)
}

// CrossCompiler turns SPIR-V back into GLSL.
type CrossCompiler interface {
	CrossCompile(ctx context.Context, spirv []byte, dialect Dialect) (string, error)
}

// Glslang runs glslangValidator.
type Glslang struct {
	Bin  string
	Args []string
}

// NewGlslang returns a Glslang running bin with extra arguments parsed
// shell-style from args.
func NewGlslang(bin, args string) (*Glslang, error) {
	if bin == "" {
		bin = "glslangValidator"
	}
	extra, err := shellwords.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("parsing glslang arguments: %w", err)
	}
	return &Glslang{Bin: bin, Args: extra}, nil
}

// CompileSPIRV compiles req.Path with OpenGL semantics.
func (g *Glslang) CompileSPIRV(ctx context.Context, req Request) ([]byte, error) {
	dir, err := os.MkdirTemp("", "shaderbind-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, filepath.Base(req.Path)+".spv")
	args := append([]string{"-G", "-S", req.Stage, "-o", out}, g.commonArgs(req)...)

	if _, err := run(ctx, req.Path, g.Bin, args); err != nil {
		return nil, err
	}

	binary, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("unable to read output %q: %w", out, err)
	}
	return binary, nil
}

// Preprocess runs the preprocessor only and returns its output.
func (g *Glslang) Preprocess(ctx context.Context, req Request) (string, error) {
	args := append([]string{"-E", "-S", req.Stage}, g.commonArgs(req)...)
	out, err := run(ctx, req.Path, g.Bin, args)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (g *Glslang) commonArgs(req Request) []string {
	var args []string
	for _, dir := range req.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, g.Args...)
	return append(args, req.Path)
}

// SPIRVCross runs spirv-cross.
type SPIRVCross struct {
	Bin  string
	Args []string
}

// NewSPIRVCross returns a SPIRVCross running bin with extra arguments parsed
// shell-style from args.
func NewSPIRVCross(bin, args string) (*SPIRVCross, error) {
	if bin == "" {
		bin = "spirv-cross"
	}
	extra, err := shellwords.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("parsing spirv-cross arguments: %w", err)
	}
	return &SPIRVCross{Bin: bin, Args: extra}, nil
}

// CrossCompile converts a SPIR-V module into GLSL of the given dialect.
func (s *SPIRVCross) CrossCompile(ctx context.Context, spirv []byte, dialect Dialect) (string, error) {
	dir, err := os.MkdirTemp("", "shaderbind-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.spv")
	if err := os.WriteFile(in, spirv, 0o644); err != nil {
		return "", err
	}

	args := append(crossArgs(dialect), s.Args...)
	args = append(args, in)

	cmd := exec.CommandContext(ctx, s.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s\nfailed to run %v: %w", stderr.String(), cmd.Args, err)
	}
	return string(out), nil
}

func crossArgs(d Dialect) []string {
	args := []string{"--version", strconv.Itoa(d.Number())}
	if d.ES {
		return append(args, "--es")
	}
	return append(args, "--no-es")
}

// run executes the front end. A non-zero exit becomes a *CompileError
// carrying the combined output.
func run(ctx context.Context, path, bin string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return out, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		log := string(out)
		return nil, &CompileError{Path: path, Count: errorCount(log), Log: log}
	}
	return nil, fmt.Errorf("failed to run %v: %w", cmd.Args, err)
}

var errorCountRE = regexp.MustCompile(`(\d+) compilation errors?`)

// errorCount extracts the error count from a compiler log. Logs without a
// summary line are counted by ERROR: lines, and a failure always counts as
// at least one error.
func errorCount(log string) int {
	if m := errorCountRE.FindStringSubmatch(log); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	n := 0
	for _, line := range strings.Split(log, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "ERROR:") {
			n++
		}
	}
	return max(n, 1)
}
