// generatereqs.go

// Package generatereqs translates conda environments into pip requirement
// manifests. The active environment or a declarative environment file is
// read, conda-only packages are filtered out, and the surviving packages
// are rendered as name==version lines.
package generatereqs

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/el3ssar/generate-reqs/pkg/conda"
	"github.com/el3ssar/generate-reqs/pkg/core"
	"github.com/el3ssar/generate-reqs/pkg/pip"
)

// Re-export the boundary types for convenience
type (
	PackageRecord   = conda.PackageRecord
	EnvironmentFile = conda.EnvironmentFile
	Requirement     = pip.Requirement
	Config          = core.Config
)

// condaSource is the slice of the conda client the generator needs.
type condaSource interface {
	ActiveEnvironment() (string, error)
	ExportHistory(ctx context.Context) ([]byte, error)
	ListExport(ctx context.Context) ([]byte, error)
}

// Generator produces pip requirement manifests from conda environments.
type Generator struct {
	client     condaSource
	translator *Translator
	logger     *log.Logger
}

// NewGenerator creates a generator. A nil config selects defaults and a
// nil logger discards log output.
func NewGenerator(cfg *core.Config, logger *log.Logger) *Generator {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Generator{
		client:     conda.NewClient(cfg.CondaCommand, logger),
		translator: NewTranslator(logger, cfg.Exclude...),
		logger:     logger,
	}
}

// FromActiveEnvironment generates requirements for the active conda
// environment: the from-history export names the explicitly installed
// packages, and `conda list` supplies their installed versions.
func (g *Generator) FromActiveEnvironment(ctx context.Context) ([]Requirement, error) {
	name, err := g.client.ActiveEnvironment()
	if err != nil {
		return nil, err
	}
	g.logger.Info("exporting conda environment", "environment", name)

	history, err := g.client.ExportHistory(ctx)
	if err != nil {
		return nil, err
	}
	env, err := conda.ParseEnvironmentFile(history)
	if err != nil {
		return nil, err
	}

	installed, err := g.installedVersions(ctx)
	if err != nil {
		return nil, err
	}

	reqs := g.resolve(env, installed)
	if len(reqs) == 0 {
		return nil, ErrNoPackages
	}
	return reqs, nil
}

// FromFile generates requirements from an environment YAML file or a plain
// conda export listing; the format is detected from the contents.
func (g *Generator) FromFile(ctx context.Context, path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "reading environment file", Path: path, Err: err}
	}
	return g.FromData(ctx, data)
}

// FromData is FromFile over in-memory contents.
func (g *Generator) FromData(ctx context.Context, data []byte) ([]Requirement, error) {
	env, err := conda.ParseEnvironmentFile(data)
	if err != nil || (len(env.Dependencies) == 0 && len(env.Pip) == 0) {
		// Not an environment file; treat the contents as export lines.
		reqs := g.translator.TranslateLines(splitLines(data))
		if len(reqs) == 0 {
			return nil, ErrNoPackages
		}
		return reqs, nil
	}

	// Versions the file does not declare come from the installed
	// environment when conda is available.
	installed, err := g.installedVersions(ctx)
	if err != nil {
		g.logger.Warn("conda unavailable, using declared versions only", "err", err)
		installed = nil
	}

	reqs := g.resolve(env, installed)
	if len(reqs) == 0 {
		return nil, ErrNoPackages
	}
	return reqs, nil
}

// Write writes the requirements to path.
func (g *Generator) Write(reqs []Requirement, path string) error {
	if err := pip.WriteFile(path, reqs); err != nil {
		return err
	}
	g.logger.Info("requirements generated", "packages", len(reqs), "path", path)
	return nil
}

// installedVersions maps normalized package names to installed versions.
func (g *Generator) installedVersions(ctx context.Context) (map[string]string, error) {
	out, err := g.client.ListExport(ctx)
	if err != nil {
		return nil, err
	}
	records, err := conda.ParseExport(bytes.NewReader(out))
	if err != nil {
		return nil, err
	}

	versions := make(map[string]string, len(records))
	for _, rec := range records {
		versions[pip.NormalizeName(rec.Name)] = rec.Version
	}
	return versions, nil
}

// resolve translates the environment entries, cross-referencing installed
// versions for entries that declare none. With an installed map present,
// version-less packages missing from it are dropped; with none (conda
// unavailable), they stay as bare names. Entry order is preserved.
func (g *Generator) resolve(env *conda.EnvironmentFile, installed map[string]string) []Requirement {
	var reqs []Requirement

	translate := func(entries []string) {
		for _, entry := range entries {
			req, ok := g.translator.translateLine(entry)
			if !ok {
				continue
			}
			if req.Specifier == "" && installed != nil {
				version, ok := installed[req.Name]
				if !ok || version == "" {
					g.logger.Debug("skipping package not installed", "package", req.Name)
					continue
				}
				req.Specifier = "==" + version
			}
			reqs = append(reqs, req)
		}
	}

	translate(env.Dependencies)
	translate(env.Pip)

	return reqs
}

func splitLines(data []byte) []string {
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
}
