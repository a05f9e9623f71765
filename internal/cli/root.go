// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	generatereqs "github.com/el3ssar/generate-reqs"
	"github.com/el3ssar/generate-reqs/pkg/core"
)

var (
	cfgFile  string
	output   string
	condaBin string
	debug    bool
	config   *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "generate-reqs [environment.yml]",
	Short: "Generate requirements.txt from a conda environment",
	Long: `generate-reqs - requirements.txt from a conda environment

Translates a conda environment into a pip-compatible requirements file.
With no argument, the active conda environment is exported and translated;
with an environment.yml argument, the file's dependencies are translated
instead. Packages with no pip equivalent are skipped.`,
	Version:      "0.1.0",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/generate-reqs/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", `output file (default "requirements.txt")`)
	rootCmd.Flags().StringVar(&condaBin, "conda", "", "conda executable to invoke")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if output != "" {
		config.Output = output
	}
	if condaBin != "" {
		config.CondaCommand = condaBin
	}
	if debug {
		config.Debug = true
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	level := charmlog.InfoLevel
	if config.Debug {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Level: level})

	gen := generatereqs.NewGenerator(config, logger)

	var (
		reqs []generatereqs.Requirement
		err  error
	)
	if len(args) == 1 {
		reqs, err = gen.FromFile(cmd.Context(), args[0])
	} else {
		reqs, err = gen.FromActiveEnvironment(cmd.Context())
	}
	if err != nil {
		return err
	}

	return gen.Write(reqs, config.Output)
}
