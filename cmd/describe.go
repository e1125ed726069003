package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/curaprof/curaprof/internal/exec"
)

// describeCmd groups the inspection subcommands.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show resolved configuration and machine details",
}

var describeConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the final merged curaprof configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		return e.ExecuteDescribeConfigCmd(cliConfig, format)
	},
}

var describeMachineCmd = &cobra.Command{
	Use:   "machine <name>",
	Short: "Resolve one machine's inheritance chain and effective settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		return e.ExecuteDescribeMachineCmd(cliConfig, args[0], format)
	},
}

func init() {
	describeConfigCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	describeMachineCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")

	describeCmd.AddCommand(describeConfigCmd)
	describeCmd.AddCommand(describeMachineCmd)
	RootCmd.AddCommand(describeCmd)
}
