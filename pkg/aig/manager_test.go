package aig

import "testing"

func TestAndCommutativeCanonicalization(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()

	ab := m.And(a, b)
	ba := m.And(b, a)
	if !ab.Equal(ba) {
		t.Fatalf("And(a,b) = %v, And(b,a) = %v; want equal", ab, ba)
	}
}

func TestStrashingDeduplicatesStructurallyEqualNodes(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()

	n1 := m.And(a, b)
	n2 := m.And(a, b)
	if n1.ID() != n2.ID() {
		t.Fatalf("two calls to And(a,b) produced distinct nodes %d and %d", n1.ID(), n2.ID())
	}
	if m.AndNum() != 1 {
		t.Fatalf("AndNum() = %d, want 1", m.AndNum())
	}
}

func TestAndFoldsConstantsAndComplements(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()

	if got := m.And(a, a); !got.Equal(a) {
		t.Fatalf("And(a,a) = %v, want %v", got, a)
	}
	if got := m.And(a, a.Not()); !got.Equal(m.Const0()) {
		t.Fatalf("And(a,¬a) = %v, want const0", got)
	}
	if got := m.And(a, m.Const1()); !got.Equal(a) {
		t.Fatalf("And(a,1) = %v, want %v", got, a)
	}
	if got := m.And(a, m.Const0()); !got.Equal(m.Const0()) {
		t.Fatalf("And(a,0) = %v, want const0", got)
	}
}

// TestBalanceReducesChainDepth builds a 7-input AND chain (depth 6) and
// checks that Balance rebuilds it as a balanced tree of depth 3.
func TestBalanceReducesChainDepth(t *testing.T) {
	m := Start(0)
	pis := make([]Edge, 7)
	for i := range pis {
		pis[i] = m.CreatePi()
	}
	chain := pis[0]
	for i := 1; i < len(pis); i++ {
		chain = m.And(chain, pis[i])
	}
	m.CreatePo(chain)

	if lvl := m.Object(chain.ID()).Level; lvl != 6 {
		t.Fatalf("unbalanced chain level = %d, want 6 (7 literals folded left-to-right)", lvl)
	}

	bal := m.Balance()
	if bal.PoNum() != 1 {
		t.Fatalf("balanced manager has %d POs, want 1", bal.PoNum())
	}
	got := bal.CountLevels()
	if got != 3 {
		t.Fatalf("CountLevels() after Balance = %d, want 3", got)
	}
}

func TestSeqStrashConvertsLatchesAndReportsClean(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()
	// one combinational PI/PO pair, one latch-designated PI/PO pair
	m.CreatePo(m.And(a, b))
	latchIn := m.CreatePi()
	m.CreatePo(latchIn)

	report := m.SeqStrash(1, []uint8{0})
	if !report.OK() {
		t.Fatalf("SeqStrash report has issues: %+v", report.Issues)
	}
	if m.LatchNum() != 1 {
		t.Fatalf("LatchNum() = %d, want 1", m.LatchNum())
	}
	if m.PoNum() != 1 {
		t.Fatalf("PoNum() = %d after latch conversion, want 1", m.PoNum())
	}
	if m.PiNum() != 2 {
		t.Fatalf("PiNum() = %d after latch conversion, want 2", m.PiNum())
	}
	if m.BufNum() != 0 {
		t.Fatalf("BufNum() = %d after latch conversion, want 0 (the converted Pi's Buf is dangling and must be swept)", m.BufNum())
	}
}

func TestRecognizeMuxRoundTrip(t *testing.T) {
	m := Start(0)
	c := m.CreatePi()
	th := m.CreatePi()
	el := m.CreatePi()

	mux := m.Mux(c, th, el)
	o := m.Object(mux.ID())

	ok, ctrl, dataT, dataE := m.RecognizeMux(o)
	if !ok {
		t.Fatalf("RecognizeMux failed on a node built by Mux")
	}
	want := map[int32]bool{c.ID(): true}
	if !want[ctrl.ID()] {
		t.Fatalf("RecognizeMux returned ctrl id %d, want %d", ctrl.ID(), c.ID())
	}
	gotLegs := map[int32]bool{dataT.ID(): true, dataE.ID(): true}
	if !gotLegs[th.ID()] || !gotLegs[el.ID()] {
		t.Fatalf("RecognizeMux legs %v/%v do not match original t=%d e=%d", dataT, dataE, th.ID(), el.ID())
	}
}

func TestCheckCleanOnFreshManager(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()
	m.CreatePo(m.And(a, b))

	report := m.Check()
	if !report.OK() {
		t.Fatalf("Check() on a freshly built manager found issues: %+v", report.Issues)
	}
}

func TestCleanupRemovesExclusiveCone(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()
	c := m.CreatePi()

	sub := m.And(a, b)
	top := m.And(sub, c)
	po := m.Object(m.CreatePo(top).ID())
	before := m.ObjNum()

	// Retargeting the PO's driver away from top drops top's only reference;
	// top's own removal then drops sub's only reference, cascading through
	// the whole exclusively-owned cone (top and sub, but not the PIs).
	m.PatchFanin0(po, m.Const0())

	removed := m.Cleanup()
	if removed != 2 {
		t.Fatalf("Cleanup() removed %d objects, want 2 (top and sub)", removed)
	}
	if after := m.ObjNum(); after != before-2 {
		t.Fatalf("ObjNum after Cleanup = %d, want %d", after, before-2)
	}
}

func TestCutEnumerationRespectsLeafBound(t *testing.T) {
	m := Start(0)
	pis := make([]Edge, 4)
	for i := range pis {
		pis[i] = m.CreatePi()
	}
	n1 := m.And(pis[0], pis[1])
	n2 := m.And(pis[2], pis[3])
	top := m.And(n1, n2)
	m.CreatePo(top)

	cuts := m.EnumerateCuts(3)
	topCuts := cuts[top.ID()]
	if len(topCuts) == 0 {
		t.Fatalf("no cuts found for top node")
	}
	for _, c := range topCuts {
		if len(c.Leaves) > 3 {
			t.Fatalf("cut %v exceeds requested K=3", c.Leaves)
		}
	}

	// the trivial self-cut must always be present
	foundSelf := false
	for _, c := range topCuts {
		if len(c.Leaves) == 1 && c.Leaves[0] == top.ID() {
			foundSelf = true
		}
	}
	if !foundSelf {
		t.Fatalf("trivial self-cut missing from top node's cut set")
	}
}

func TestCutTruthMatchesAndSemantics(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()
	n := m.And(a, b)
	nObj := m.Object(n.ID())

	cut := &Cut{Leaves: []int32{a.ID(), b.ID()}}
	truth := m.CutTruth(nObj, cut)
	// elemTruth(0) & elemTruth(1) is the AND truth table over 2 variables
	want := elemTruth(0) & elemTruth(1)
	if truth != want {
		t.Fatalf("CutTruth(AND) = %#x, want %#x", truth, want)
	}
}

func TestMinimizeCutSupportDropsUnusedLeaf(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()

	leaves := []int32{a.ID(), b.ID()}
	truth := elemTruth(0) // depends only on leaf 0 (a), not leaf 1 (b)
	newLeaves, newTruth := MinimizeCutSupport(leaves, truth)
	if len(newLeaves) != 1 || newLeaves[0] != a.ID() {
		t.Fatalf("MinimizeCutSupport kept %v, want only a's id", newLeaves)
	}
	if newTruth != 0x2 { // single-variable "buffer" truth table: bit1=1,bit0=0
		t.Fatalf("MinimizeCutSupport truth = %#x, want 0x2", newTruth)
	}
}

func TestDupProducesIsomorphicCopy(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	b := m.CreatePi()
	m.CreatePo(m.And(a, b))

	dup := m.Dup(true)
	if dup.PiNum() != m.PiNum() || dup.PoNum() != m.PoNum() {
		t.Fatalf("Dup changed Pi/Po counts: got (%d,%d), want (%d,%d)",
			dup.PiNum(), dup.PoNum(), m.PiNum(), m.PoNum())
	}
	if dup.AndNum() != m.AndNum() {
		t.Fatalf("Dup AndNum = %d, want %d", dup.AndNum(), m.AndNum())
	}
}

func TestTravIDMarksCurrentPassOnly(t *testing.T) {
	m := Start(0)
	a := m.CreatePi()
	o := m.Object(a.ID())

	m.IncrementTravID()
	if m.IsTravIDCurrent(o) {
		t.Fatalf("object marked current before SetTravIDCurrent was called")
	}
	m.SetTravIDCurrent(o)
	if !m.IsTravIDCurrent(o) {
		t.Fatalf("object not marked current after SetTravIDCurrent")
	}
	m.IncrementTravID()
	if m.IsTravIDCurrent(o) {
		t.Fatalf("object still marked current after a new traversal pass began")
	}
}
