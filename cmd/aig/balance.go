package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aigcore/pkg/aig"
	"aigcore/pkg/flag"
)

var balancePis = flag.NewUintFlag("pis", "number of primary inputs to fold into an AND chain", false, nil)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Build an unbalanced AND chain and report the level reduction from Balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := int(balancePis.Value)
		if n < 2 {
			n = 7
		}

		m := aig.Start(0)
		top := buildChain(m, n)
		m.CreatePo(top)

		before := m.CountLevels()
		bal := m.Balance()
		after := bal.CountLevels()

		log.Infof("balanced %d-input chain: %d objects before, %d after", n, m.ObjNum(), bal.ObjNum())
		fmt.Printf("levels before=%d after=%d\n", before, after)
		return nil
	},
}

func init() {
	balancePis.AddTo(balanceCmd.Flags())
}
