// pkg/pip/requirements.go

// Package pip renders package records as pip requirement lines.
//
// Package names are normalized following PEP 503: lowercased, with runs of
// hyphens, underscores, and dots collapsed to a single hyphen.
package pip

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Requirement is a single pip dependency: a normalized name plus an
// optional version specifier including its operator (e.g. "==1.24.0").
type Requirement struct {
	Name      string
	Specifier string
}

// String renders the requirement in requirements.txt syntax.
func (r Requirement) String() string {
	return r.Name + r.Specifier
}

// Pinned builds an exact-version requirement for a package.
func Pinned(name, version string) Requirement {
	return Requirement{
		Name:      NormalizeName(name),
		Specifier: "==" + version,
	}
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizeName normalizes a package name per PEP 503.
func NormalizeName(name string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(strings.TrimSpace(name), "-"))
}

// operators are the pip version comparison operators, two-character forms
// first so they match before their single-character prefixes.
var operators = []string{"==", ">=", "<=", "!=", "~=", ">", "<"}

// SplitSpecifier splits a pip-style requirement line into its name and
// version specifier. ok is false when the line carries no comparison
// operator; a bare conda-style "name=version" does not count as one.
func SplitSpecifier(line string) (name, specifier string, ok bool) {
	for _, op := range operators {
		if idx := strings.Index(line, op); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx:]), true
		}
	}
	return "", "", false
}

// Write writes one requirement per line, with a trailing newline.
func Write(w io.Writer, reqs []Requirement) error {
	for _, req := range reqs {
		if _, err := fmt.Fprintln(w, req.String()); err != nil {
			return fmt.Errorf("writing requirement: %w", err)
		}
	}
	return nil
}

// WriteFile writes the requirements to path, creating parent directories
// as needed.
func WriteFile(path string, reqs []Requirement) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Write(f, reqs); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
