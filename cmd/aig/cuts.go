package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aigcore/pkg/aig"
	"aigcore/pkg/config"
	"aigcore/pkg/flag"
)

var cutsBits = flag.NewUintFlag("bits", "adder operand width to build for the demo circuit", false, nil)
var cutsK = flag.NewUintFlag("k", "maximum cut size; 0 falls back to the config file's cut-size", false, nil)

var cutsCmd = &cobra.Command{
	Use:   "cuts",
	Short: "Enumerate K-feasible cuts over a demo adder and report per-node cut counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, log)
		if err != nil {
			return err
		}

		k := int(cutsK.Value)
		if k == 0 {
			k = cfg.CutSize
		}

		n := int(cutsBits.Value)
		if n == 0 {
			n = 8
		}
		m := aig.Start(0)
		buildAdder(m, n)

		nodes := m.AndNum() + m.ExorNum()
		bar := log.NewProgress("enumerate cuts", "nodes", int64(nodes))

		cuts := m.EnumerateCuts(k)

		var total, maxAtNode int
		m.ForEachNode(func(o *aig.Object) {
			c := len(cuts[o.ID])
			total += c
			if c > maxAtNode {
				maxAtNode = c
			}
			bar.Increment(1)
		})
		bar.Finish(true)

		fmt.Printf("k=%d nodes=%d cuts=%d max-cuts-per-node=%d\n", k, nodes, total, maxAtNode)
		return nil
	},
}

func init() {
	cutsBits.AddTo(cutsCmd.Flags())
	cutsK.AddTo(cutsCmd.Flags())
}
