package main

import "aigcore/pkg/aig"

// buildChain builds a left-folded AND chain over n freshly created primary
// inputs: And(...And(And(p0,p1),p2)...,p(n-1)). It's the shape balance's
// demo command uses to show depth reduction.
func buildChain(m *aig.Manager, n int) aig.Edge {
	acc := m.CreatePi()
	for i := 1; i < n; i++ {
		acc = m.And(acc, m.CreatePi())
	}
	return acc
}

// buildAdder builds an n-bit ripple-carry adder's sum outputs over two
// n-bit operands (2n primary inputs, n primary outputs) plus the final
// carry-out, a structurally rich circuit for stats/cuts/simulate demos.
func buildAdder(m *aig.Manager, n int) {
	carry := m.Const0()
	for i := 0; i < n; i++ {
		a := m.CreatePi()
		b := m.CreatePi()
		sum := m.Exor(m.Exor(a, b), carry)
		m.CreatePo(sum)
		carry = m.Maj(a, b, carry)
	}
	m.CreatePo(carry)
}
