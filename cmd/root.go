package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cfg "github.com/curaprof/curaprof/pkg/config"
	log "github.com/curaprof/curaprof/pkg/logger"
	"github.com/curaprof/curaprof/pkg/schema"
)

// cliConfig holds the merged tool configuration for all commands.
var cliConfig schema.Configuration

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "curaprof",
	Short: "Extract and resolve Cura slicer profiles",
	Long: `Curaprof resolves Cura's multi-layer configuration inheritance into one
flattened, source-annotated document of effective settings for a machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(); it only needs to happen once.
func Execute() error {
	var err error
	cliConfig, err = cfg.LoadConfig()
	if err != nil {
		return err
	}

	applyFlagOverrides()
	log.SetLevelString(cliConfig.Logs.Level)

	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("install-path", "", "Cura installation path (default: auto-detect)")
	RootCmd.PersistentFlags().String("data-path", "", "Cura user-data path (default: auto-detect)")
	RootCmd.PersistentFlags().String("logs-level", "", "Log level: debug, info, warn, error")
}

// applyFlagOverrides lets persistent flags win over the config file and
// environment. The flag set is parsed ahead of cobra's own run so the
// overrides are visible while setting up logging and discovery.
func applyFlagOverrides() {
	flags := RootCmd.PersistentFlags()
	flags.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	_ = flags.Parse(os.Args[1:])
	if v, err := flags.GetString("install-path"); err == nil && v != "" {
		cliConfig.InstallPath = v
	}
	if v, err := flags.GetString("data-path"); err == nil && v != "" {
		cliConfig.DataPath = v
	}
	if v, err := flags.GetString("logs-level"); err == nil && v != "" {
		cliConfig.Logs.Level = v
	}
}
