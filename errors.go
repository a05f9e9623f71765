// errors.go
package generatereqs

import (
	"errors"
	"fmt"

	"github.com/el3ssar/generate-reqs/pkg/conda"
)

var (
	// ErrNoPackages indicates translation produced no requirements
	ErrNoPackages = errors.New("no packages to write")

	// Re-exported conda errors so callers can match with errors.Is
	// without importing pkg/conda.
	ErrCondaNotFound   = conda.ErrCondaNotFound
	ErrNoEnvironment   = conda.ErrNoEnvironment
	ErrBaseEnvironment = conda.ErrBaseEnvironment
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // Input or output path if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
