package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aigcore/pkg/aig"
	"aigcore/pkg/flag"
	"aigcore/pkg/logx"
	"aigcore/pkg/simulate"
)

var simulateMask = flag.NewStringFlag("mask", "enumeration mask, e.g. \"1(2)\"; empty means one variable per input", false, nil)

func buildXor3(m *aig.Manager) {
	a := m.CreatePi()
	b := m.CreatePi()
	c := m.CreatePi()
	m.CreatePo(m.Exor(m.Exor(a, b), c))
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate two demo AIGs side by side and report the first disagreement, if any",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m1 := aig.Start(0)
		buildXor3(m1)

		m2 := aig.Start(0)
		buildXor3(m2)

		var bar logx.Progress
		report, err := simulate.Compare(m1, m2, simulateMask.Value, func(done int, total uint64) {
			if bar == nil {
				bar = log.NewProgress("simulate", "patterns", int64(total))
			}
			bar.Increment(int64(done))
		})
		if bar != nil {
			bar.Finish(err == nil && report.OK)
		}
		if err != nil {
			return err
		}
		fmt.Println(report.String())
		return nil
	},
}

func init() {
	simulateMask.AddTo(simulateCmd.Flags())
}
