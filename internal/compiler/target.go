package compiler

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Configuration errors.
var (
	ErrInvalidTarget    = errors.New("invalid target")
	ErrInvalidSkipSPIRV = errors.New("skip-spirv requires a GLSL target")
	ErrNoDest           = errors.New("no destination directory")
	ErrInvalidDialect   = errors.New("invalid GLSL version")
)

// TargetKind selects the embedded asset.
type TargetKind uint8

const (
	// TargetAuto picks SPIR-V unless the build rules out binaries.
	TargetAuto TargetKind = iota
	// TargetSPIRV embeds SPIR-V modules.
	TargetSPIRV
	// TargetGLSL embeds GLSL source in a given dialect.
	TargetGLSL
)

func (k TargetKind) String() string {
	switch k {
	case TargetAuto:
		return "auto"
	case TargetSPIRV:
		return "spirv"
	case TargetGLSL:
		return "glsl"
	default:
		return fmt.Sprintf("TargetKind(%d)", uint8(k))
	}
}

// Dialect is a GLSL version.
type Dialect struct {
	Version *semver.Version
	ES      bool
}

// Well-known dialects.
var (
	GLSL460   = Dialect{Version: semver.New(4, 6, 0, "", "")}
	GLSL300ES = Dialect{Version: semver.New(3, 0, 0, "", ""), ES: true}
	GLSL100ES = Dialect{Version: semver.New(1, 0, 0, "", ""), ES: true}
)

var (
	desktopVersions = mustConstraint(">= 1.1.0, <= 4.6.0")
	esVersions      = mustConstraint("1.0.0 || >= 3.0.0, <= 3.2.0")
	// WebGL only accepts these.
	wasmVersions = mustConstraint("1.0.0 || 3.0.0")
)

func mustConstraint(c string) *semver.Constraints {
	cs, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return cs
}

// ParseDialect parses "460", "4.6", "300 es" or "3.0es".
func ParseDialect(s string) (Dialect, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	var d Dialect
	if rest, ok := strings.CutSuffix(text, "es"); ok {
		d.ES = true
		text = strings.TrimSpace(rest)
	}

	var err error
	if n, convErr := strconv.Atoi(text); convErr == nil && !strings.Contains(text, ".") {
		if n < 100 || n > 999 {
			return Dialect{}, fmt.Errorf("%w: %q", ErrInvalidDialect, s)
		}
		d.Version = semver.New(uint64(n/100), uint64(n%100/10), 0, "", "")
	} else if d.Version, err = semver.NewVersion(text); err != nil {
		return Dialect{}, fmt.Errorf("%w: %q: %w", ErrInvalidDialect, s, err)
	}

	valid := desktopVersions
	if d.ES {
		valid = esVersions
	}
	if !valid.Check(d.Version) {
		return Dialect{}, fmt.Errorf("%w: %q is not a GLSL version", ErrInvalidDialect, s)
	}
	return d, nil
}

// Number is the #version number, e.g. 460.
func (d Dialect) Number() int {
	if d.Version == nil {
		return 0
	}
	return int(d.Version.Major()*100 + d.Version.Minor()*10)
}

func (d Dialect) String() string {
	if d.ES {
		return fmt.Sprintf("%d es", d.Number())
	}
	return strconv.Itoa(d.Number())
}

// Equal reports whether both dialects name the same version.
func (d Dialect) Equal(o Dialect) bool {
	return d.ES == o.ES && d.Number() == o.Number()
}

// Target is the requested output.
type Target struct {
	Kind    TargetKind
	Dialect Dialect
}

func (t Target) String() string {
	if t.Kind == TargetGLSL {
		return "glsl " + t.Dialect.String()
	}
	return t.Kind.String()
}

// ParseTarget parses a target name and, for glsl, its version.
func ParseTarget(kind, version string) (Target, error) {
	switch strings.ToLower(kind) {
	case "", "auto", "automatic":
		return Target{Kind: TargetAuto}, nil
	case "spirv", "spir-v", "spv":
		return Target{Kind: TargetSPIRV}, nil
	case "glsl":
		if version == "" {
			return Target{Kind: TargetGLSL, Dialect: GLSL460}, nil
		}
		d, err := ParseDialect(version)
		if err != nil {
			return Target{}, err
		}
		return Target{Kind: TargetGLSL, Dialect: d}, nil
	default:
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, kind)
	}
}

// ResolveTarget turns a requested target into a concrete one.
//
// Automatic becomes GLSL 3.00 es for wasm builds, GLSL 4.60 when SPIR-V is
// skipped and SPIR-V otherwise. SPIR-V is rejected for wasm and together with
// skipSPIRV. Wasm builds only accept GLSL 1.00 es and 3.00 es.
func ResolveTarget(t Target, skipSPIRV, wasm bool) (Target, error) {
	switch t.Kind {
	case TargetAuto:
		switch {
		case wasm:
			return Target{Kind: TargetGLSL, Dialect: GLSL300ES}, nil
		case skipSPIRV:
			return Target{Kind: TargetGLSL, Dialect: GLSL460}, nil
		default:
			return Target{Kind: TargetSPIRV}, nil
		}

	case TargetSPIRV:
		if wasm {
			return Target{}, fmt.Errorf("%w: %s is not supported for wasm", ErrInvalidTarget, t)
		}
		if skipSPIRV {
			return Target{}, ErrInvalidSkipSPIRV
		}
		return t, nil

	case TargetGLSL:
		if t.Dialect.Version == nil {
			return Target{}, fmt.Errorf("%w: glsl target without a version", ErrInvalidTarget)
		}
		if wasm && (!t.Dialect.ES || !wasmVersions.Check(t.Dialect.Version)) {
			return Target{}, fmt.Errorf("%w: %s is not supported for wasm", ErrInvalidTarget, t)
		}
		return t, nil

	default:
		return Target{}, fmt.Errorf("%w: %s", ErrInvalidTarget, t)
	}
}

// DetectWASM reports whether go generate runs for a wasm build.
func DetectWASM() bool {
	return os.Getenv("GOARCH") == "wasm"
}
