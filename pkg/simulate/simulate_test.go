package simulate

import (
	"strings"
	"testing"

	"aigcore/pkg/aig"
)

func buildXor3(m *aig.Manager) {
	a := m.CreatePi()
	b := m.CreatePi()
	c := m.CreatePi()
	m.CreatePo(m.Exor(m.Exor(a, b), c))
}

func TestCompareEquivalentAigsAgreeOnFullMask(t *testing.T) {
	m1 := aig.Start(0)
	buildXor3(m1)
	m2 := aig.Start(0)
	buildXor3(m2)

	report, err := Compare(m1, m2, "", nil)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if !report.OK {
		t.Fatalf("Compare reported a mismatch between identical AIGs: %s", report)
	}
	if report.Patterns != 8 {
		t.Fatalf("Patterns = %d, want 8 (2^3 inputs)", report.Patterns)
	}
	if !strings.HasPrefix(report.String(), "OK patterns=8") {
		t.Fatalf("String() = %q, want an OK summary", report.String())
	}
}

func TestCompareDetectsFunctionalMismatch(t *testing.T) {
	m1 := aig.Start(0)
	buildXor3(m1)

	// m2 computes AND(a,b,c) instead of XOR: functionally different.
	m2 := aig.Start(0)
	a := m2.CreatePi()
	b := m2.CreatePi()
	c := m2.CreatePi()
	m2.CreatePo(m2.And(m2.And(a, b), c))

	report, err := Compare(m1, m2, "", nil)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if report.OK {
		t.Fatalf("Compare reported equivalence between XOR3 and AND3")
	}
	if report.Mismatch == nil {
		t.Fatalf("report.OK is false but Mismatch is nil")
	}
}

func TestCompareWithGroupedMask(t *testing.T) {
	m1 := aig.Start(0)
	buildXor3(m1)
	m2 := aig.Start(0)
	buildXor3(m2)

	// "1(2)" = first input varies alone, the other two are tied together.
	report, err := Compare(m1, m2, "1(2)", nil)
	if err != nil {
		t.Fatalf("Compare with grouped mask returned error: %v", err)
	}
	if !report.OK {
		t.Fatalf("Compare mismatch under grouped mask: %s", report)
	}
	if report.Patterns != 4 {
		t.Fatalf("Patterns = %d, want 4 (2 enumeration variables)", report.Patterns)
	}
}

func TestParseMaskRejectsWidthMismatch(t *testing.T) {
	if _, err := ParseMask("2 2", 3); err == nil {
		t.Fatalf("expected an error when mask widths (4) do not sum to input count (3)")
	}
}

func TestParseMaskDefaultIsOneVarPerInput(t *testing.T) {
	masks, err := ParseMask("", 5)
	if err != nil {
		t.Fatalf("ParseMask(\"\", 5) returned error: %v", err)
	}
	if len(masks) != 5 {
		t.Fatalf("len(masks) = %d, want 5", len(masks))
	}
	for i, m := range masks {
		if m != 1<<uint(i) {
			t.Fatalf("masks[%d] = %#x, want %#x", i, m, uint64(1)<<uint(i))
		}
	}
}
