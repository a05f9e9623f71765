// pkg/conda/constants.go
package conda

import "time"

const (
	// DefaultCommand is the conda executable invoked for listings and exports
	DefaultCommand = "conda"

	// EnvVarActiveEnv is set by `conda activate` to the active environment name
	EnvVarActiveEnv = "CONDA_DEFAULT_ENV"

	// BaseEnvironment is conda's root environment, which is refused as an
	// export source
	BaseEnvironment = "base"

	// DefaultTimeout bounds a single conda invocation
	DefaultTimeout = 60 * time.Second
)
