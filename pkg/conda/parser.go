// pkg/conda/parser.go
package conda

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseExport parses `conda list --export` style output. Comment lines,
// blank lines, and lines that do not look like package entries are dropped.
func ParseExport(r io.Reader) ([]*PackageRecord, error) {
	scanner := bufio.NewScanner(r)

	var records []*PackageRecord
	for scanner.Scan() {
		rec, ok := ParseExportLine(scanner.Text())
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning export output: %w", err)
	}

	return records, nil
}

// ParseExportLine parses a single export line of the form name=version=build,
// optionally prefixed with a channel (channel::name=version=build). The
// version and build parts may be absent. Comment lines, blank lines, and
// lines whose name contains pip comparison operators report ok=false.
func ParseExportLine(line string) (*PackageRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}

	var channel string
	if idx := strings.Index(line, "::"); idx != -1 {
		channel = strings.TrimSpace(line[:idx])
		line = line[idx+2:]
	}

	parts := strings.SplitN(line, "=", 3)
	rec := &PackageRecord{
		Name:    strings.TrimSpace(parts[0]),
		Channel: channel,
	}
	if len(parts) > 1 {
		rec.Version = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		// name==version leaves an empty middle part
		if rec.Version == "" {
			rec.Version = strings.TrimSpace(parts[2])
		} else {
			rec.Build = strings.TrimSpace(parts[2])
		}
	}

	if rec.Name == "" || strings.ContainsAny(rec.Name, "<>!~ ") {
		return nil, false
	}
	if strings.ContainsAny(rec.Version, "=<>! ") {
		return nil, false
	}

	return rec, true
}

// environmentDoc mirrors the YAML layout of an environment file. The
// dependencies list is heterogeneous (plain strings plus a pip: mapping),
// so entries decode from raw nodes.
type environmentDoc struct {
	Name         string      `yaml:"name"`
	Channels     []string    `yaml:"channels"`
	Dependencies []yaml.Node `yaml:"dependencies"`
}

// ParseEnvironmentFile parses a conda environment YAML document such as an
// environment.yml file or `conda env export --from-history` output.
// Dependency entries it cannot decode are dropped.
func ParseEnvironmentFile(data []byte) (*EnvironmentFile, error) {
	var doc environmentDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing environment file: %w", err)
	}

	env := &EnvironmentFile{
		Name:     doc.Name,
		Channels: doc.Channels,
	}

	for _, node := range doc.Dependencies {
		switch node.Kind {
		case yaml.ScalarNode:
			var entry string
			if err := node.Decode(&entry); err != nil {
				continue
			}
			if entry = strings.TrimSpace(entry); entry != "" {
				env.Dependencies = append(env.Dependencies, entry)
			}
		case yaml.MappingNode:
			var section map[string][]string
			if err := node.Decode(&section); err != nil {
				continue
			}
			env.Pip = append(env.Pip, section["pip"]...)
		}
	}

	return env, nil
}
