package av1dec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildNoSkipMaskAllSkip(t *testing.T) {
	var skip [32]uint8
	for i := range skip {
		skip[i] = 1
	}
	lo, hi := BuildNoSkipMask(skip)
	if lo != 0 || hi != 0 {
		t.Errorf("all-skip row: got lo=%#x hi=%#x, want 0,0", lo, hi)
	}
}

func TestBuildNoSkipMaskSingleBlock(t *testing.T) {
	// Block at bx=4 (columns 4,5) has coded coefficients; every other block
	// is skip.
	var skip [32]uint8
	for i := range skip {
		skip[i] = 1
	}
	skip[4] = 0
	skip[5] = 0

	lo, hi := BuildNoSkipMask(skip)
	wantLo := uint32(3) << 4
	if uint32(lo) != wantLo || hi != 0 {
		t.Errorf("got lo=%#x hi=%#x, want lo=%#x hi=0", lo, hi, wantLo)
	}
}

func TestBuildNoSkipMaskHighHalf(t *testing.T) {
	var skip [32]uint8
	for i := range skip {
		skip[i] = 1
	}
	skip[18] = 0
	skip[19] = 0

	lo, hi := BuildNoSkipMask(skip)
	wantHi := uint32(3) << (18 - 16)
	if lo != 0 || uint32(hi) != wantHi {
		t.Errorf("got lo=%#x hi=%#x, want lo=0 hi=%#x", lo, hi, wantHi)
	}
}

func TestBlockSummaryFieldsIndependent(t *testing.T) {
	// Only Skip feeds BuildNoSkipMask; setting it must leave every other
	// per-column array at its zero value.
	var got BlockSummary
	got.Skip[4] = 1
	got.Skip[5] = 1

	var want BlockSummary
	want.Skip[4] = 1
	want.Skip[5] = 1

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BlockSummary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNoSkipMaskOneOfPairCoded(t *testing.T) {
	// Only one 4-pixel sub-column of the pair is non-skip: the 8x8 block
	// still has coded coefficients, so both bits of the pair are set.
	var skip [32]uint8
	for i := range skip {
		skip[i] = 1
	}
	skip[4] = 1
	skip[5] = 0

	lo, _ := BuildNoSkipMask(skip)
	want := uint32(3) << 4
	if uint32(lo) != want {
		t.Errorf("got lo=%#x, want %#x", lo, want)
	}
}
