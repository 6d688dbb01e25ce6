package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aigcore/pkg/aig"
)

var seqstrashCmd = &cobra.Command{
	Use:   "seqstrash",
	Short: "Build a one-bit toggle register and convert it with SeqStrash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := aig.Start(0)

		a := m.CreatePi()
		b := m.CreatePi()
		m.CreatePo(m.And(a, b))

		state := m.CreatePi()
		m.CreatePo(m.Exor(state, m.Const1()))

		report := m.SeqStrash(1, []uint8{0})
		if !report.OK() {
			return report.AsError()
		}

		fmt.Printf("latches=%d pis=%d pos=%d levels=%d\n",
			m.LatchNum(), m.PiNum(), m.PoNum(), m.CountLevels())
		return nil
	},
}
