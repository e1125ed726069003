package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/curaprof/curaprof/internal/exec"
)

// versionCmd prints the curaprof version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the curaprof version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return e.ExecuteVersionCmd()
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
