// translator.go
package generatereqs

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/el3ssar/generate-reqs/pkg/conda"
	"github.com/el3ssar/generate-reqs/pkg/pip"
)

// defaultExclusions are packages that have no meaningful pip equivalent:
// the interpreter itself, the installers, and conda's own plumbing.
var defaultExclusions = []string{
	"python",
	"pip",
	"conda",
	"conda-env",
}

// Translator converts conda package listings into pip requirements. It is a
// single-pass, order-preserving filter-map: comment and blank lines are
// skipped, excluded packages are dropped, and everything else is rendered
// as a pip requirement.
type Translator struct {
	exclude map[string]struct{}
	logger  *log.Logger
}

// NewTranslator creates a translator. A nil logger discards log output;
// extra names extend the default exclusion set.
func NewTranslator(logger *log.Logger, extra ...string) *Translator {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	exclude := make(map[string]struct{}, len(defaultExclusions)+len(extra))
	for _, name := range defaultExclusions {
		exclude[pip.NormalizeName(name)] = struct{}{}
	}
	for _, name := range extra {
		exclude[pip.NormalizeName(name)] = struct{}{}
	}

	return &Translator{exclude: exclude, logger: logger}
}

// Translate converts raw input lines into pip requirement strings,
// preserving input order. Lines may be conda export entries
// (name=version=build), environment-file entries, or pip-style
// requirements, which pass through with the name normalized.
func (t *Translator) Translate(lines []string) []string {
	reqs := t.TranslateLines(lines)

	out := make([]string, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, req.String())
	}
	return out
}

// TranslateLines is Translate returning structured requirements.
func (t *Translator) TranslateLines(lines []string) []pip.Requirement {
	var reqs []pip.Requirement
	for _, line := range lines {
		if req, ok := t.translateLine(line); ok {
			reqs = append(reqs, req)
		}
	}
	return reqs
}

// TranslateRecords converts parsed package records, preserving order.
func (t *Translator) TranslateRecords(records []*conda.PackageRecord) []pip.Requirement {
	var reqs []pip.Requirement
	for _, rec := range records {
		if req, ok := t.translateRecord(rec); ok {
			reqs = append(reqs, req)
		}
	}
	return reqs
}

func (t *Translator) translateLine(line string) (pip.Requirement, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return pip.Requirement{}, false
	}

	// Strip a channel prefix (conda-forge::numpy=1.24)
	if idx := strings.Index(line, "::"); idx != -1 {
		line = line[idx+2:]
	}

	// Entries already in pip syntax pass through
	if name, spec, ok := pip.SplitSpecifier(line); ok {
		if name == "" || t.excluded(name) {
			return pip.Requirement{}, false
		}
		return pip.Requirement{Name: pip.NormalizeName(name), Specifier: spec}, true
	}

	rec, ok := conda.ParseExportLine(line)
	if !ok {
		t.logger.Debug("skipping unparseable line", "line", line)
		return pip.Requirement{}, false
	}
	return t.translateRecord(rec)
}

func (t *Translator) translateRecord(rec *conda.PackageRecord) (pip.Requirement, bool) {
	if t.excluded(rec.Name) {
		t.logger.Debug("excluding conda-only package", "package", rec.Name)
		return pip.Requirement{}, false
	}
	if rec.Version == "" {
		return pip.Requirement{Name: pip.NormalizeName(rec.Name)}, true
	}
	return pip.Pinned(rec.Name, rec.Version), true
}

// excluded reports whether a package has no pip equivalent: members of the
// exclusion set, and leading-underscore names, which are conda build
// artifacts (_libgcc_mutex and friends).
func (t *Translator) excluded(name string) bool {
	if strings.HasPrefix(name, "_") {
		return true
	}
	_, ok := t.exclude[pip.NormalizeName(name)]
	return ok
}
