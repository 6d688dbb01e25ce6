package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"aigcore/pkg/logx"
)

func TestLoadFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	log := &logx.CLI{DisableTTY: true}

	viper.Reset()
	cfg, err := Load("/does/not/exist.yaml", log)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.CutSize)
	require.Equal(t, "", cfg.Mask)
}

func TestLoadRejectsNonPositiveCutSize(t *testing.T) {
	log := &logx.CLI{DisableTTY: true}

	viper.Reset()
	viper.SetConfigFile("testdata/bad-cut-size.yaml")
	cfg, err := Load("testdata/bad-cut-size.yaml", log)
	require.Error(t, err)
	require.Equal(t, 0, cfg.CutSize)
}
