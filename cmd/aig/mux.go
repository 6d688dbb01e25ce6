package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aigcore/pkg/aig"
)

var muxCmd = &cobra.Command{
	Use:   "mux",
	Short: "Build a 2-to-1 mux and confirm RecognizeMux recovers its structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := aig.Start(0)
		c := m.CreatePi()
		th := m.CreatePi()
		el := m.CreatePi()

		muxEdge := m.Mux(c, th, el)
		obj := m.Object(muxEdge.ID())

		ok, ctrl, dataT, dataE := m.RecognizeMux(obj)
		if !ok {
			return fmt.Errorf("mux: RecognizeMux failed to recover structure of its own Mux() output")
		}

		fmt.Printf("ctrl=%v dataT=%v dataE=%v match: ctrl==c %v dataT==th %v dataE==el %v\n",
			ctrl, dataT, dataE, ctrl.Equal(c), dataT.Equal(th), dataE.Equal(el))
		return nil
	},
}
