package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/curaprof/curaprof/internal/exec"
)

// listCmd groups the discovery listing subcommands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered machines and profiles",
}

var listMachinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the machine instances found in the Cura data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return e.ExecuteListMachinesCmd(cliConfig)
	},
}

var listProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the custom quality profiles found in the Cura data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return e.ExecuteListProfilesCmd(cliConfig)
	},
}

func init() {
	listCmd.AddCommand(listMachinesCmd)
	listCmd.AddCommand(listProfilesCmd)
	RootCmd.AddCommand(listCmd)
}
