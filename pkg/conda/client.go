// pkg/conda/client.go
package conda

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrCondaNotFound indicates the conda executable is not on PATH
	ErrCondaNotFound = errors.New("conda executable not found")

	// ErrNoEnvironment indicates no conda environment is active
	ErrNoEnvironment = errors.New("no active conda environment")

	// ErrBaseEnvironment indicates the base environment is active
	ErrBaseEnvironment = errors.New("base environment is active")
)

// runFunc executes a command and returns its stdout. Swapped out in tests.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client invokes the conda binary to list installed packages and export
// environment specifications.
type Client struct {
	command string
	timeout time.Duration
	logger  *log.Logger
	run     runFunc
}

// NewClient creates a conda client. An empty command selects the default
// conda executable; a nil logger discards log output.
func NewClient(command string, logger *log.Logger) *Client {
	if command == "" {
		command = DefaultCommand
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Client{
		command: command,
		timeout: DefaultTimeout,
		logger:  logger,
	}
	c.run = c.execute
	return c
}

func (c *Client) execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCondaNotFound, name)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s: %s", name, strings.Join(args, " "), msg)
		}
		return nil, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return stdout.Bytes(), nil
}

// ListExport runs `conda list --export` and returns its raw output.
func (c *Client) ListExport(ctx context.Context) ([]byte, error) {
	c.logger.Debug("listing installed packages", "command", c.command)

	out, err := c.run(ctx, c.command, "list", "--export")
	if err != nil {
		return nil, fmt.Errorf("listing installed packages: %w", err)
	}
	return out, nil
}

// ExportHistory runs `conda env export --from-history` and returns the
// resulting YAML document.
func (c *Client) ExportHistory(ctx context.Context) ([]byte, error) {
	c.logger.Debug("exporting environment history", "command", c.command)

	out, err := c.run(ctx, c.command, "env", "export", "--from-history")
	if err != nil {
		return nil, fmt.Errorf("exporting environment: %w", err)
	}
	return out, nil
}

// ActiveEnvironment returns the name of the active conda environment. It
// fails when no environment is active or when the base environment is,
// since base is shared and not meaningful to export.
func (c *Client) ActiveEnvironment() (string, error) {
	name := os.Getenv(EnvVarActiveEnv)
	if name == "" {
		return "", ErrNoEnvironment
	}
	if name == BaseEnvironment {
		return "", ErrBaseEnvironment
	}
	return name, nil
}
