// Package config loads the curaprof tool configuration.
package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/curaprof/curaprof/pkg/schema"
)

const (
	// ConfigFileName is the config file base name (`curaprof.yaml`).
	ConfigFileName = "curaprof"

	// ConfigFileType is the config file format.
	ConfigFileType = "yaml"

	// EnvPrefix prefixes environment variable overrides
	// (e.g. CURAPROF_INSTALL_PATH).
	EnvPrefix = "CURAPROF"

	// DefaultFallbackDefinition seeds the inheritance chain when a machine's
	// container stack names no base definition. `fdmprinter` is the
	// universal ancestor of every FDM printer definition Cura ships.
	DefaultFallbackDefinition = "fdmprinter"

	// DefaultMaterialLimit caps material discovery listings.
	DefaultMaterialLimit = 20
)

// LoadConfig reads the configuration from the following locations, from
// lower to higher priority: XDG config dirs, the user config dir, the
// working directory, and CURAPROF_* environment variables.
func LoadConfig() (schema.Configuration, error) {
	v := viper.New()
	var cfg schema.Configuration

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	setDefaults(v)

	for _, dir := range xdg.ConfigDirs {
		v.AddConfigPath(filepath.Join(dir, ConfigFileName))
	}
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, ConfigFileName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "reading curaprof config")
		}
		// No config file is fine; defaults and env apply.
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing curaprof config")
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can bind it even when no
// config file exists.
func setDefaults(v *viper.Viper) {
	v.SetDefault("install_path", "")
	v.SetDefault("data_path", "")
	v.SetDefault("logs.level", "info")
	v.SetDefault("logs.file", "")
	v.SetDefault("settings.fallback_definition", DefaultFallbackDefinition)
	v.SetDefault("settings.material_limit", DefaultMaterialLimit)
}
