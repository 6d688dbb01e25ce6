// Package config loads the aig tool's persistent defaults: a cut size and a
// simulation mask. The cuts command uses the cut size when --k is 0; the
// simulate command takes its mask from --mask only and does not read the
// configured one, which is shown by "config show".
package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"aigcore/pkg/logx"
)

// configFileName is the viper config name, without extension: viper looks
// for ~/.aigcore.yaml (or another extension it supports).
const configFileName = ".aigcore"

// Config holds the settings read from the config file, with defaults
// applied for anything it omits.
type Config struct {
	CutSize int    `mapstructure:"cut-size"`
	Mask    string `mapstructure:"mask"`
}

func defaults() Config {
	return Config{
		CutSize: 6,
		Mask:    "",
	}
}

// Load reads cfgFile if given, otherwise looks for configFileName in the
// user's home directory, falling back to defaults when neither is found.
func Load(cfgFile string, log logx.Logger) (Config, error) {
	cfg := defaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Debugf("could not resolve home directory: %v", err)
			return cfg, nil
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(configFileName)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Debugf("%s", err.Error())
		log.Debugf("using default configuration")
		return cfg, nil
	}

	log.Debugf("using config file: %s", viper.ConfigFileUsed())
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.CutSize <= 0 {
		return cfg, fmt.Errorf("config: cut-size must be positive, got %d", cfg.CutSize)
	}

	return cfg, nil
}
