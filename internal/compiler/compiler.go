// Package compiler drives the per-shader pipeline: compile GLSL with an
// external front end, reflect the SPIR-V, render bindings and write the
// artifacts. It also keeps the manifest entries in registration order.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/shaderbind/internal/codegen"
	"github.com/Faultbox/shaderbind/internal/logger"
	"github.com/Faultbox/shaderbind/internal/reflect"
	"github.com/Faultbox/shaderbind/internal/shaderkind"
)

// ErrDestIsSource is returned when an artifact would overwrite its own
// shader source.
var ErrDestIsSource = errors.New("artifact would overwrite shader source")

// Options configures a Compiler.
type Options struct {
	Dest      string
	Package   string
	Target    Target
	SkipSPIRV bool
	// WASM restricts targets to what WebGL accepts.
	WASM bool
	// Quiet suppresses rerun-if-changed notifications.
	Quiet       bool
	IncludeDirs []string

	Frontend Frontend
	Cross    CrossCompiler
	// Generator defaults to codegen.New().
	Generator *codegen.Generator
	// Logger defaults to logger.Log.
	Logger *zap.Logger
	// Notify receives build notifications. Defaults to os.Stdout.
	Notify io.Writer
}

// Compiler turns shader sources into bindings.
type Compiler struct {
	opts   Options
	target Target
	gen    *codegen.Generator
	log    *zap.Logger

	notifyMu sync.Mutex
	entries  []codegen.Entry
}

// New validates opts and resolves the target.
func New(opts Options) (*Compiler, error) {
	if opts.Dest == "" {
		return nil, ErrNoDest
	}
	target, err := ResolveTarget(opts.Target, opts.SkipSPIRV, opts.WASM)
	if err != nil {
		return nil, err
	}
	if opts.Frontend == nil {
		return nil, errors.New("no front end configured")
	}
	if target.Kind == TargetGLSL && !opts.SkipSPIRV && opts.Cross == nil {
		return nil, fmt.Errorf("target %s needs a cross compiler", target)
	}

	c := &Compiler{
		opts:   opts,
		target: target,
		gen:    opts.Generator,
		log:    opts.Logger,
	}
	if c.gen == nil {
		c.gen = codegen.New()
	}
	if c.log == nil {
		c.log = logger.Log
	}
	if c.opts.Notify == nil {
		c.opts.Notify = os.Stdout
	}
	return c, nil
}

// Target returns the resolved target.
func (c *Compiler) Target() Target {
	return c.target
}

// Entries returns the manifest entries registered so far.
func (c *Compiler) Entries() []codegen.Entry {
	return append([]codegen.Entry(nil), c.entries...)
}

// artifacts is everything one shader writes. It is fully rendered before
// anything touches the destination.
type artifacts struct {
	name    string
	asset   string
	data    []byte
	wrapper string
	code    []byte
}

// Wrap processes one shader and registers it for the manifest.
func (c *Compiler) Wrap(ctx context.Context, path string) error {
	a, err := c.build(ctx, path)
	if err != nil {
		return err
	}
	if err := c.write(a); err != nil {
		return err
	}
	c.entries = append(c.entries, codegen.EntryFor(a.name))
	return nil
}

// WrapAll processes paths with up to jobs shaders in flight. Entries are
// registered in the order of paths. Without keepGoing the first failure
// cancels the remaining shaders.
func (c *Compiler) WrapAll(ctx context.Context, paths []string, jobs int, keepGoing bool) error {
	names := make([]string, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			a, err := c.build(gctx, path)
			if err == nil {
				err = c.write(a)
			}
			if err != nil {
				if errors.Is(err, context.Canceled) && ctx.Err() == nil {
					// Stopped because a sibling failed.
					return nil
				}
				errs[i] = err
				if keepGoing {
					return nil
				}
				return err
			}
			names[i] = a.name
			return nil
		})
	}
	_ = g.Wait()

	for _, name := range names {
		if name != "" {
			c.entries = append(c.entries, codegen.EntryFor(name))
		}
	}
	return errors.Join(errs...)
}

// WriteManifest writes the manifest of every registered shader.
func (c *Compiler) WriteManifest() error {
	code, err := c.gen.Manifest(c.opts.Package, c.entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.opts.Dest, 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", c.opts.Dest, err)
	}
	path := filepath.Join(c.opts.Dest, codegen.ManifestFile)
	if err := writeFile(path, code); err != nil {
		return err
	}
	c.log.Info("manifest written", zap.String("path", path), zap.Int("shaders", len(c.entries)))
	return nil
}

func (c *Compiler) build(ctx context.Context, path string) (*artifacts, error) {
	name := filepath.Base(path)
	log := c.log.With(zap.String("shader", name))

	kind, err := shaderkind.FromPath(path)
	if err != nil {
		return nil, err
	}

	deps, err := dependencies(path, c.opts.IncludeDirs)
	if err != nil {
		return nil, err
	}
	c.notify(deps)

	req := Request{Path: deps[0], Stage: kind.Ext, IncludeDirs: c.opts.IncludeDirs}
	a := &artifacts{name: name, wrapper: codegen.WrapperFile(name)}
	mode := codegen.SourceLookup
	var uniforms []reflect.Uniform

	if c.opts.SkipSPIRV {
		src, err := c.opts.Frontend.Preprocess(ctx, req)
		if err != nil {
			c.logCompileError(log, err)
			return nil, err
		}
		a.asset = name
		a.data = []byte(fixupPreprocessed(src))
	} else {
		binary, err := c.opts.Frontend.CompileSPIRV(ctx, req)
		if err != nil {
			c.logCompileError(log, err)
			return nil, err
		}

		res, err := reflect.ReflectBinary(binary)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for _, d := range res.Diagnostics {
			log.Warn("uniform not wrapped", zap.String("uniform", d.Name), zap.String("reason", d.Message))
		}
		uniforms = res.Uniforms

		if c.target.Kind == TargetSPIRV {
			mode = codegen.ReflectedBinary
			a.asset = name + ".spv"
			a.data = binary
		} else {
			src, err := c.opts.Cross.CrossCompile(ctx, binary, c.target.Dialect)
			if err != nil {
				return nil, fmt.Errorf("%s: cross compiling: %w", name, err)
			}
			a.asset = name
			a.data = []byte(src)
		}
	}

	if same, err := samePath(filepath.Join(c.opts.Dest, a.asset), deps[0]); err != nil {
		return nil, err
	} else if same {
		return nil, fmt.Errorf("%w: %s", ErrDestIsSource, deps[0])
	}

	a.code, err = c.gen.Wrapper(codegen.Shader{
		Name:     name,
		Kind:     kind,
		Mode:     mode,
		Asset:    a.asset,
		Package:  c.opts.Package,
		Uniforms: uniforms,
	})
	if err != nil {
		return nil, err
	}

	log.Debug("shader wrapped", zap.Stringer("mode", mode), zap.Int("uniforms", len(uniforms)))
	return a, nil
}

func (c *Compiler) write(a *artifacts) error {
	if err := os.MkdirAll(c.opts.Dest, 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", c.opts.Dest, err)
	}
	if err := writeFile(filepath.Join(c.opts.Dest, a.asset), a.data); err != nil {
		return err
	}
	return writeFile(filepath.Join(c.opts.Dest, a.wrapper), a.code)
}

func (c *Compiler) notify(paths []string) {
	if c.opts.Quiet {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	for _, p := range paths {
		fmt.Fprintf(c.opts.Notify, "rerun-if-changed=%s\n", p)
	}
}

func (c *Compiler) logCompileError(log *zap.Logger, err error) {
	var ce *CompileError
	if errors.As(err, &ce) {
		log.Error("compilation failed", zap.Int("errors", ce.Count), zap.String("log", ce.Log))
	}
}

// writeFile replaces path atomically so a failed write never leaves a
// truncated artifact behind.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
