package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var includeRE = regexp.MustCompile(`^\s*#\s*include\s+["<]([^">]+)[">]`)

// dependencies returns the shader source and every file it includes,
// directly or not, in first-seen order. Includes resolve against the
// including file's directory first, then against dirs.
func dependencies(path string, dirs []string) ([]string, error) {
	var deps []string
	seen := map[string]bool{}

	var walk func(file string) error
	walk = func(file string) error {
		if seen[file] {
			return nil
		}
		seen[file] = true
		deps = append(deps, file)

		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		for _, name := range includes(data) {
			resolved, err := resolveInclude(name, filepath.Dir(file), dirs)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if err := walk(resolved); err != nil {
				return err
			}
		}
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if err := walk(abs); err != nil {
		return nil, err
	}
	return deps, nil
}

func includes(src []byte) []string {
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		if m := includeRE.FindStringSubmatch(sc.Text()); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

func resolveInclude(name, dir string, dirs []string) (string, error) {
	for _, base := range append([]string{dir}, dirs...) {
		candidate := name
		if !filepath.IsAbs(name) {
			candidate = filepath.Join(base, name)
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs, nil
		}
	}
	return "", fmt.Errorf("include %q not found", name)
}

// fixupPreprocessed makes preprocessor output acceptable to GLSL ES
// drivers: the include extension is dropped and #line directives are
// commented out.
func fixupPreprocessed(src string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(src, "\n") {
		switch {
		case strings.HasPrefix(line, "#extension GL_GOOGLE_include_directive"):
			continue
		case strings.HasPrefix(line, "#line"):
			b.WriteString("//")
		}
		b.WriteString(line)
	}
	return b.String()
}
