package simulate

import (
	"fmt"
	"math/bits"
	"time"

	"aigcore/pkg/aig"
)

// NW is the number of 64-bit words per simulation round; NW*64 = 4096
// patterns are evaluated together each round.
const NW = 64

// Batch is the number of patterns covered by one round.
const Batch = NW * 64

type wordVec [NW]uint64

// Mismatch describes the first pattern at which two AIGs disagree.
type Mismatch struct {
	Pattern uint64
	OutBit  int
	InHex   string
	Y1Hex   string
	Y2Hex   string
}

// Report is the result of Compare.
type Report struct {
	OK       bool
	Patterns uint64
	Rounds   uint64
	Elapsed  time.Duration
	Mismatch *Mismatch
}

// String renders the report the way the source's command line tool prints
// it: "OK patterns=N rounds=N time=Xs" on success, or a FAIL block with the
// offending pattern and both outputs in hex.
func (r *Report) String() string {
	if r.OK {
		return fmt.Sprintf("OK patterns=%d rounds=%d time=%.3fs", r.Patterns, r.Rounds, r.Elapsed.Seconds())
	}
	return fmt.Sprintf("FAIL pattern=%d out_bit=%d\n  in  = %s\n  y1  = %s\n  y2  = %s",
		r.Mismatch.Pattern, r.Mismatch.OutBit, r.Mismatch.InHex, r.Mismatch.Y1Hex, r.Mismatch.Y2Hex)
}

// Compare simulates m1 and m2 side by side over every pattern selected by
// maskStr and reports whether their primary outputs agree on every one. The
// two managers must have the same primary input and primary output counts,
// each no more than 64 (one machine word of simulation state per pattern
// batch covers at most 64 inputs/outputs, per design note "bit-parallel
// simulation" sizing).
//
// onRound, if non-nil, is called once per completed batch of up to Batch
// patterns with the number of patterns just finished and the total pattern
// count, so a caller can drive a progress indicator over a sweep spanning
// many rounds.
func Compare(m1, m2 *aig.Manager, maskStr string, onRound func(done int, total uint64)) (*Report, error) {
	nCis := m1.PiNum()
	if nCis != m2.PiNum() {
		return nil, fmt.Errorf("simulate: input count mismatch (%d vs %d)", nCis, m2.PiNum())
	}
	nCos := m1.PoNum()
	if nCos != m2.PoNum() {
		return nil, fmt.Errorf("simulate: output count mismatch (%d vs %d)", nCos, m2.PoNum())
	}
	if nCis > 64 || nCos > 64 {
		return nil, fmt.Errorf("simulate: supports at most 64 inputs and outputs (got I=%d O=%d)", nCis, nCos)
	}

	varMasks, err := ParseMask(maskStr, nCis)
	if err != nil {
		return nil, err
	}
	nVars := len(varMasks)
	if nVars > 63 {
		return nil, fmt.Errorf("simulate: too many mask variables (max 63), got %d", nVars)
	}

	combs := uint64(1) << uint(nVars)
	inMask := maskBits(nCis)
	outMask := maskBits(nCos)

	order1 := m1.Dfs()
	order2 := m2.Dfs()
	words1 := make([]wordVec, m1.ObjIdMax())
	words2 := make([]wordVec, m2.ObjIdMax())
	setConst(words1, m1.Const1().ID())
	setConst(words2, m2.Const1().ID())

	pis1 := collectPiIDs(m1)
	pis2 := collectPiIDs(m2)
	pos1 := collectPoDrivers(m1)
	pos2 := collectPoDrivers(m2)

	var rounds, patsDone uint64
	var inVec [Batch]uint64
	start := time.Now()

	for base := uint64(0); base < combs; base += Batch {
		remain := combs - base
		nThis := Batch
		if remain < Batch {
			nThis = int(remain)
		}

		var valid [NW]uint64
		left := nThis
		for w := 0; w < NW; w++ {
			switch {
			case left >= 64:
				valid[w] = ^uint64(0)
				left -= 64
			case left > 0:
				valid[w] = (uint64(1) << uint(left)) - 1
				left = 0
			default:
				valid[w] = 0
			}
		}

		clearPIs(words1, pis1)
		clearPIs(words2, pis2)

		for ptn := 0; ptn < nThis; ptn++ {
			idx := base + uint64(ptn)
			var in uint64
			for j := 0; j < nVars; j++ {
				if idx&(1<<uint(j)) != 0 {
					in |= varMasks[j]
				}
			}
			in &= inMask
			inVec[ptn] = in

			w := ptn >> 6
			bit := uint64(1) << uint(ptn&63)
			for i := 0; i < nCis; i++ {
				if in&(1<<uint(i)) != 0 {
					words1[pis1[i]][w] |= bit
					words2[pis2[i]][w] |= bit
				}
			}
		}

		simulateOrder(words1, order1)
		simulateOrder(words2, order2)

		if mm := compareOutputs(words1, words2, pos1, pos2, valid, inVec[:], inMask, outMask, nCis, nCos); mm != nil {
			mm.Pattern += patsDone
			return &Report{OK: false, Patterns: combs, Rounds: rounds + 1, Elapsed: time.Since(start), Mismatch: mm}, nil
		}

		rounds++
		patsDone += uint64(nThis)
		if onRound != nil {
			onRound(nThis, combs)
		}
	}

	return &Report{OK: true, Patterns: combs, Rounds: rounds, Elapsed: time.Since(start)}, nil
}

func compareOutputs(words1, words2 []wordVec, pos1, pos2 []aig.Edge, valid [NW]uint64, inVec []uint64, inMask, outMask uint64, nCis, nCos int) *Mismatch {
	for o := 0; o < nCos; o++ {
		for w := 0; w < NW; w++ {
			y1 := simLit(pos1[o], words1, w)
			y2 := simLit(pos2[o], words2, w)
			diff := (y1 ^ y2) & valid[w]
			if diff == 0 {
				continue
			}
			bit := bits.TrailingZeros64(diff)
			ptn := w<<6 | bit

			var out1, out2 uint64
			for oo := 0; oo < nCos; oo++ {
				out1 |= ((simLit(pos1[oo], words1, w) >> uint(bit)) & 1) << uint(oo)
				out2 |= ((simLit(pos2[oo], words2, w) >> uint(bit)) & 1) << uint(oo)
			}

			inHexDigits := (nCis + 3) / 4
			outHexDigits := (nCos + 3) / 4
			return &Mismatch{
				Pattern: uint64(ptn),
				OutBit:  o,
				InHex:   fmt.Sprintf("0x%0*x", inHexDigits, inVec[ptn]&inMask),
				Y1Hex:   fmt.Sprintf("0x%0*x", outHexDigits, out1&outMask),
				Y2Hex:   fmt.Sprintf("0x%0*x", outHexDigits, out2&outMask),
			}
		}
	}
	return nil
}

func simLit(e aig.Edge, words []wordVec, w int) uint64 {
	v := words[e.ID()][w]
	if e.IsComplement() {
		v = ^v
	}
	return v
}

func simulateOrder(words []wordVec, order []*aig.Object) {
	for _, n := range order {
		for w := 0; w < NW; w++ {
			a := simLit(n.Fanin0, words, w)
			b := simLit(n.Fanin1, words, w)
			if n.Kind == aig.KindExor {
				words[n.ID][w] = a ^ b
			} else {
				words[n.ID][w] = a & b
			}
		}
	}
}

func collectPiIDs(m *aig.Manager) []int32 {
	ids := make([]int32, 0, m.PiNum())
	m.ForEachPi(func(_ int, e aig.Edge) { ids = append(ids, e.ID()) })
	return ids
}

func collectPoDrivers(m *aig.Manager) []aig.Edge {
	drivers := make([]aig.Edge, 0, m.PoNum())
	m.ForEachPo(func(_ int, e aig.Edge) {
		po := m.Object(e.ID())
		drivers = append(drivers, po.Fanin0)
	})
	return drivers
}

func setConst(words []wordVec, id int32) {
	for w := 0; w < NW; w++ {
		words[id][w] = ^uint64(0)
	}
}

func clearPIs(words []wordVec, ids []int32) {
	for _, id := range ids {
		words[id] = wordVec{}
	}
}

func maskBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	if n <= 0 {
		return 0
	}
	return (uint64(1) << uint(n)) - 1
}
