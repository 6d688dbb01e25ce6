package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"aigcore/pkg/aig"
	"aigcore/pkg/flag"
)

var statsBits = flag.NewUintFlag("bits", "adder operand width to build for the demo circuit", false, nil)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build a demo ripple-carry adder and report its structural stats",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return statsBits.FlagValidate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.New().String()
		log.Debugf("run %s: building %d-bit adder", runID, statsBits.Value)

		n := int(statsBits.Value)
		if n == 0 {
			n = 8
		}
		m := aig.Start(0)
		buildAdder(m, n)

		report := m.Check()
		if !report.OK() {
			return report.AsError()
		}

		fmt.Printf("pis=%d pos=%d and=%d exor=%d levels=%d\n",
			m.PiNum(), m.PoNum(), m.AndNum(), m.ExorNum(), m.CountLevels())
		return nil
	},
}

func init() {
	statsBits.AddTo(statsCmd.Flags())
}
