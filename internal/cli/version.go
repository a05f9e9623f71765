// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("generate-reqs version 0.1.0")
		fmt.Println("Generate requirements.txt from a conda environment")
		fmt.Println("https://github.com/el3ssar/generate-reqs")
	},
}
