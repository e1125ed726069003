package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/curaprof/curaprof/internal/exec"
)

var extractArgs e.ExtractCmdArgs

var (
	noPreferences bool
	noMachine     bool
	noGCode       bool
	noExtruders   bool
	noBuiltin     bool
	noCustom      bool
	noPlugins     bool
)

// extractCmd produces the full profile document for one machine.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the full resolved profile document for a machine",
	Long: `Extract resolves a machine's container stack, walks its definition
inheritance chain, merges setting metadata bottom-up, applies the machine's
definition changes, and emits one JSON or YAML document covering preferences,
machine settings, G-code, extruders, quality profiles, and plugins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		extractArgs.Options = e.ExtractOptions{
			Preferences:    !noPreferences,
			Machine:        !noMachine,
			GCode:          !noGCode,
			Extruders:      !noExtruders,
			QualityBuiltin: !noBuiltin,
			QualityCustom:  !noCustom,
			Plugins:        !noPlugins,
		}
		return e.ExecuteExtractCmd(cliConfig, extractArgs)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractArgs.Machine, "machine", "m", "", "Machine instance to extract (default: first discovered)")
	extractCmd.Flags().StringVarP(&extractArgs.Output, "output", "o", "", "Write the document to this file instead of stdout")
	extractCmd.Flags().StringVarP(&extractArgs.Format, "format", "f", "json", "Output format: json or yaml")
	extractCmd.Flags().BoolVar(&extractArgs.Raw, "raw", false, "Skip readability formatting of list and G-code values")

	extractCmd.Flags().BoolVar(&noPreferences, "no-preferences", false, "Skip the preferences section")
	extractCmd.Flags().BoolVar(&noMachine, "no-machine", false, "Skip the machine section")
	extractCmd.Flags().BoolVar(&noGCode, "no-gcode", false, "Skip the G-code section")
	extractCmd.Flags().BoolVar(&noExtruders, "no-extruders", false, "Skip the extruders section")
	extractCmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "Skip the built-in quality profiles section")
	extractCmd.Flags().BoolVar(&noCustom, "no-custom", false, "Skip the custom quality profiles section")
	extractCmd.Flags().BoolVar(&noPlugins, "no-plugins", false, "Skip the plugins section")

	RootCmd.AddCommand(extractCmd)
}
