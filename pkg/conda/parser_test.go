// pkg/conda/parser_test.go
package conda

import (
	"strings"
	"testing"
)

func TestParseExportLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *PackageRecord
		ok   bool
	}{
		{"full export line", "numpy=1.24.0=py311h1234", &PackageRecord{Name: "numpy", Version: "1.24.0", Build: "py311h1234"}, true},
		{"name and version", "numpy=1.24.0", &PackageRecord{Name: "numpy", Version: "1.24.0"}, true},
		{"bare name", "numpy", &PackageRecord{Name: "numpy"}, true},
		{"double equals", "numpy==1.24.0", &PackageRecord{Name: "numpy", Version: "1.24.0"}, true},
		{"channel prefix", "conda-forge::numpy=1.24.0=py311_0", &PackageRecord{Name: "numpy", Version: "1.24.0", Build: "py311_0", Channel: "conda-forge"}, true},
		{"surrounding whitespace", "  numpy=1.24.0  ", &PackageRecord{Name: "numpy", Version: "1.24.0"}, true},
		{"comment", "# This file may be used to create an environment", nil, false},
		{"blank", "", nil, false},
		{"whitespace only", "   ", nil, false},
		{"pip operator in name", "requests>=2.31", nil, false},
		{"lone separator", "=1.0", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExportLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseExportLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if *got != *tt.want {
				t.Errorf("ParseExportLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseExport(t *testing.T) {
	input := `# This file may be used to create an environment using:
# platform: linux-64
numpy=1.24.0=py311h1234
python=3.11.0=h12345
scipy=1.10.1=py311h5678

requests=2.31.0=pyhd8ed1ab_0
`

	records, err := ParseExport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseExport() error = %v", err)
	}

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	want := []string{"numpy", "python", "scipy", "requests"}
	if len(names) != len(want) {
		t.Fatalf("ParseExport() names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("record %d = %q, want %q (order must be preserved)", i, names[i], want[i])
		}
	}

	if records[0].Version != "1.24.0" || records[0].Build != "py311h1234" {
		t.Errorf("first record = %+v, want version 1.24.0 build py311h1234", records[0])
	}
}

func TestParseExportEmpty(t *testing.T) {
	records, err := ParseExport(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseExport() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ParseExport() = %v, want no records", records)
	}
}

func TestParseEnvironmentFile(t *testing.T) {
	input := `name: science
channels:
  - conda-forge
  - defaults
dependencies:
  - python=3.11
  - numpy=1.24.0
  - scipy
  - conda-forge::pandas=2.0.1
  - pip
  - pip:
      - requests==2.31.0
      - flask>=2.0
`

	env, err := ParseEnvironmentFile([]byte(input))
	if err != nil {
		t.Fatalf("ParseEnvironmentFile() error = %v", err)
	}

	if env.Name != "science" {
		t.Errorf("Name = %q, want %q", env.Name, "science")
	}
	if len(env.Channels) != 2 || env.Channels[0] != "conda-forge" {
		t.Errorf("Channels = %v, want [conda-forge defaults]", env.Channels)
	}

	wantDeps := []string{"python=3.11", "numpy=1.24.0", "scipy", "conda-forge::pandas=2.0.1", "pip"}
	if len(env.Dependencies) != len(wantDeps) {
		t.Fatalf("Dependencies = %v, want %v", env.Dependencies, wantDeps)
	}
	for i := range wantDeps {
		if env.Dependencies[i] != wantDeps[i] {
			t.Errorf("dependency %d = %q, want %q", i, env.Dependencies[i], wantDeps[i])
		}
	}

	wantPip := []string{"requests==2.31.0", "flask>=2.0"}
	if len(env.Pip) != len(wantPip) {
		t.Fatalf("Pip = %v, want %v", env.Pip, wantPip)
	}
	for i := range wantPip {
		if env.Pip[i] != wantPip[i] {
			t.Errorf("pip entry %d = %q, want %q", i, env.Pip[i], wantPip[i])
		}
	}
}

func TestParseEnvironmentFileNoDependencies(t *testing.T) {
	env, err := ParseEnvironmentFile([]byte("name: empty\nchannels:\n  - defaults\n"))
	if err != nil {
		t.Fatalf("ParseEnvironmentFile() error = %v", err)
	}
	if len(env.Dependencies) != 0 || len(env.Pip) != 0 {
		t.Errorf("expected no dependencies, got %v / %v", env.Dependencies, env.Pip)
	}
}

func TestParseEnvironmentFileInvalidYAML(t *testing.T) {
	if _, err := ParseEnvironmentFile([]byte("numpy=1.24.0=py311h1234\npython=3.11.0=h12345\n")); err == nil {
		t.Error("expected an error for non-YAML export content")
	}
}
