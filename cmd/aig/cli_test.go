package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aigcore/pkg/logx"
)

func init() {
	log = &logx.CLI{DisableTTY: true}
}

func TestStatsCmdRunsCleanly(t *testing.T) {
	statsBits.Value = 4
	err := statsCmd.RunE(statsCmd, nil)
	require.NoError(t, err)
}

func TestBalanceCmdRunsCleanly(t *testing.T) {
	balancePis.Value = 7
	err := balanceCmd.RunE(balanceCmd, nil)
	require.NoError(t, err)
}

func TestSeqstrashCmdRunsCleanly(t *testing.T) {
	err := seqstrashCmd.RunE(seqstrashCmd, nil)
	require.NoError(t, err)
}

func TestSimulateCmdRunsCleanly(t *testing.T) {
	simulateMask.Value = ""
	err := simulateCmd.RunE(simulateCmd, nil)
	require.NoError(t, err)
}

func TestCutsCmdRunsCleanly(t *testing.T) {
	cutsBits.Value = 4
	cutsK.Value = 4
	configFile = ""
	err := cutsCmd.RunE(cutsCmd, nil)
	require.NoError(t, err)
}

func TestMuxCmdRunsCleanly(t *testing.T) {
	err := muxCmd.RunE(muxCmd, nil)
	require.NoError(t, err)
}

func TestConfigShowCmdRunsCleanly(t *testing.T) {
	configFile = ""
	err := configShowCmd.RunE(configShowCmd, nil)
	require.NoError(t, err)
}
