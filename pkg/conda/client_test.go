// pkg/conda/client_test.go
package conda

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func fakeRunner(t *testing.T, wantArgs []string, output string, runErr error) runFunc {
	t.Helper()
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		got := append([]string{name}, args...)
		if strings.Join(got, " ") != strings.Join(wantArgs, " ") {
			t.Errorf("command = %v, want %v", got, wantArgs)
		}
		if runErr != nil {
			return nil, runErr
		}
		return []byte(output), nil
	}
}

func TestListExport(t *testing.T) {
	c := NewClient("", nil)
	c.run = fakeRunner(t, []string{"conda", "list", "--export"}, "numpy=1.24.0=py311\n", nil)

	out, err := c.ListExport(context.Background())
	if err != nil {
		t.Fatalf("ListExport() error = %v", err)
	}
	if string(out) != "numpy=1.24.0=py311\n" {
		t.Errorf("ListExport() = %q", out)
	}
}

func TestListExportCommandOverride(t *testing.T) {
	c := NewClient("mamba", nil)
	c.run = fakeRunner(t, []string{"mamba", "list", "--export"}, "", nil)

	if _, err := c.ListExport(context.Background()); err != nil {
		t.Fatalf("ListExport() error = %v", err)
	}
}

func TestListExportError(t *testing.T) {
	c := NewClient("", nil)
	c.run = fakeRunner(t, []string{"conda", "list", "--export"}, "", fmt.Errorf("conda list: boom"))

	if _, err := c.ListExport(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestExportHistory(t *testing.T) {
	yml := "name: science\ndependencies:\n  - numpy\n"
	c := NewClient("", nil)
	c.run = fakeRunner(t, []string{"conda", "env", "export", "--from-history"}, yml, nil)

	out, err := c.ExportHistory(context.Background())
	if err != nil {
		t.Fatalf("ExportHistory() error = %v", err)
	}
	if string(out) != yml {
		t.Errorf("ExportHistory() = %q, want %q", out, yml)
	}
}

func TestActiveEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		want    string
		wantErr error
	}{
		{"active environment", "science", "science", nil},
		{"no environment", "", "", ErrNoEnvironment},
		{"base environment", "base", "", ErrBaseEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvVarActiveEnv, tt.env)

			c := NewClient("", nil)
			got, err := c.ActiveEnvironment()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ActiveEnvironment() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ActiveEnvironment() = %q, want %q", got, tt.want)
			}
		})
	}
}
