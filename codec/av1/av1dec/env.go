/*
DESCRIPTION
  env.go provides the per-32-column entropy-context block summary a full
  decoder threads alongside the CDEF noskip mask, grounded in
  original_source/src/env.rs's BlockContext. It is peripheral to the CDEF
  driver (spec §1 lists the entropy-context block summary as "included in
  sources but peripheral to the core") — the driver never reads it — but it
  gives BuildNoSkipMask a real, typed source for the skip bits instead of
  requiring test fixtures to invent a BlockMaskSb128 from nothing.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

// BlockSummary is the per-32-column slice of decode-time block state a
// frame's entropy context keeps. Only Skip is consumed by this package;
// the rest is carried because a complete port exposes BlockContext in
// full, and future consumers (motion vector prediction, loop filter level
// selection) read the other fields from the same struct in the original.
type BlockSummary struct {
	Mode     [32]uint8
	Skip     [32]uint8
	SkipMode [32]uint8
	Intra    [32]uint8
	TxLPFY   [32]uint8
	TxLPFUV  [32]uint8
	Partition [16]uint8
}

// BuildNoSkipMask derives the two 16-bit noskip halves for one by_idx row
// of a BlockMaskSb128 from a BlockSummary's Skip array, where a 0 means
// "has coded coefficients" (AV1's skip flag is 1 for "no residual"). Each
// 8x8 block covers two adjacent 4-pixel columns, matching the `3 <<
// (bx & 30)` pairing the driver tests against in decodeSkip.
func BuildNoSkipMask(skip [32]uint8) (lo, hi uint16) {
	for bx := 0; bx < 32; bx += 2 {
		if skip[bx] != 0 && skip[bx+1] != 0 {
			continue // both 4-pixel sub-columns are skip: no coded coefficients.
		}
		if bx < 16 {
			lo |= uint16(3) << uint(bx)
		} else {
			hi |= uint16(3) << uint(bx-16)
		}
	}
	return lo, hi
}
