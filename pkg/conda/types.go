// pkg/conda/types.go
package conda

// PackageRecord is the parsed form of one package entry from a conda
// listing: name, version, and optionally the build string and channel.
type PackageRecord struct {
	Name    string
	Version string
	Build   string
	Channel string
}

// EnvironmentFile is a declarative conda environment as found in an
// environment.yml document or in `conda env export` output.
type EnvironmentFile struct {
	Name     string
	Channels []string

	// Dependencies holds the conda dependency entries in file order,
	// verbatim (e.g. "numpy", "numpy=1.24", "conda-forge::numpy=1.24").
	Dependencies []string

	// Pip holds the entries of the nested pip: section, which are already
	// written in pip requirement syntax.
	Pip []string
}
