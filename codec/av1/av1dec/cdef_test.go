package av1dec

import "testing"

// newTestFrame builds a w x h frame of the given layout with a single
// BlockMaskSb128 entry (SB128W = 1, so Brow visits two sb64 columns). Most
// tests use 64x16 I420: one sb64 wide, two 8-pixel block rows tall.
func newTestFrame(t *testing.T, w, h int, layout PixelLayout) (PlaneGroup, *FrameData) {
	t.Helper()
	planes := newTestPlaneGroup(w, h, layout)

	cdefStore, err := NewLineBufferStore(8192)
	if err != nil {
		t.Fatalf("NewLineBufferStore: %v", err)
	}
	lrStore, err := NewLineBufferStore(8192)
	if err != nil {
		t.Fatalf("NewLineBufferStore: %v", err)
	}
	lf, err := NewLineBuffers(cdefStore, lrStore)
	if err != nil {
		t.Fatalf("NewLineBuffers: %v", err)
	}

	cdef, err := NewCdefParams(4, [8]uint8{0: 4}, [8]uint8{0: 4})
	if err != nil {
		t.Fatalf("NewCdefParams: %v", err)
	}
	params, err := NewParams(cdef, SeqParams{}, FrameSize{Width: [2]int{w, w}}, layout, Depth8, w/4, h/4)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	fd := &FrameData{
		Params: params,
		Dsp:    DefaultDsp(),
		LF:     lf,
		Mask:   []*BlockMaskSb128{NewBlockMaskSb128()},
		SB128W: 1,
	}
	return planes, fd
}

// Scenario A: all-skip sb row leaves pixels and line buffers untouched and
// calls the direction kernel zero times.
func TestBrowAllSkip(t *testing.T) {
	planes, fd := newTestFrame(t, 64, 16, I420)
	fd.Mask[0].PublishCdefIdx(0, 0) // cdef_idx valid but noskip_mask stays all-zero.

	before := append([]uint16(nil), planes.Y.Pix...)
	cdefLineBefore := append([]uint16(nil), fd.LF.CdefLineBuf.Pix...)

	dirCalls := 0
	fd.Dsp.Dir = func(block PlaneView, variance *uint32, bd Depth) int {
		dirCalls++
		return 0
	}

	ctx := &Context{NumTileThreads: 1}
	tc := &TaskContext{}
	Brow(ctx, tc, fd, planes, 0, 0, 4, true, 0)

	for i := range before {
		if planes.Y.Pix[i] != before[i] {
			t.Fatalf("pixel %d changed under all-skip sb row: got %d, want %d", i, planes.Y.Pix[i], before[i])
		}
	}
	for i := range cdefLineBefore {
		if fd.LF.CdefLineBuf.Pix[i] != cdefLineBefore[i] {
			t.Fatalf("cdef line buffer byte %d changed under all-skip sb row", i)
		}
	}
	if dirCalls != 0 {
		t.Errorf("direction kernel called %d times, want 0", dirCalls)
	}
}

// Scenario B: single non-skip 8x8 with y_strength only triggers exactly one
// luma filter call and zero chroma calls, and flips top_pre_cdef_toggle once.
func TestBrowSingleNonSkipBlockLumaOnly(t *testing.T) {
	planes, fd := newTestFrame(t, 64, 16, I420)
	fd.Mask[0].PublishCdefIdx(0, 0)
	lo, hi := BuildNoSkipMask(noSkipAt(0))
	fd.Mask[0].PublishNoskipHalf(0, 0, lo)
	fd.Mask[0].PublishNoskipHalf(0, 1, hi)
	fd.Params.Cdef.YStrength[0] = 16 // pri=4, sec=0.
	fd.Params.Cdef.UVStrength[0] = 0

	lumaCalls, chromaCalls := 0, 0
	fd.Dsp.FB[0] = func(block PlaneView, left *leftBackupPlane, top, bot PlaneView, pri, sec, dir, damping int, edges EdgeFlags, bd Depth) {
		lumaCalls++
	}
	fd.Dsp.FB[1] = func(block PlaneView, left *leftBackupPlane, top, bot PlaneView, pri, sec, dir, damping int, edges EdgeFlags, bd Depth) {
		chromaCalls++
	}
	fd.Dsp.FB[2] = fd.Dsp.FB[1]

	ctx := &Context{NumTileThreads: 1}
	tc := &TaskContext{TopPreCdefToggle: 0}
	Brow(ctx, tc, fd, planes, 0, 0, 2, true, 0)

	if lumaCalls != 1 {
		t.Errorf("luma filter called %d times, want 1", lumaCalls)
	}
	if chromaCalls != 0 {
		t.Errorf("chroma filter called %d times, want 0", chromaCalls)
	}
	if tc.TopPreCdefToggle != 1 {
		t.Errorf("TopPreCdefToggle = %d, want 1 after one sb-row iteration", tc.TopPreCdefToggle)
	}
}

// noSkipAt returns a Skip array with only the block pair at column bx coded.
func noSkipAt(bx int) [32]uint8 {
	var skip [32]uint8
	for i := range skip {
		skip[i] = 1
	}
	skip[bx] = 0
	skip[bx+1] = 0
	return skip
}

// Scenario E: I422 chroma direction remap.
func TestBrowI422ChromaDirRemap(t *testing.T) {
	planes, fd := newTestFrame(t, 64, 16, I422)
	fd.Mask[0].PublishCdefIdx(0, 0)
	lo, hi := BuildNoSkipMask(noSkipAt(0))
	fd.Mask[0].PublishNoskipHalf(0, 0, lo)
	fd.Mask[0].PublishNoskipHalf(0, 1, hi)
	fd.Params.Cdef.YStrength[0] = 16  // pri=4, drives direction probe.
	fd.Params.Cdef.UVStrength[0] = 16 // pri=4, so chroma dir is remapped.

	fd.Dsp.Dir = func(block PlaneView, variance *uint32, bd Depth) int { return 3 }

	var gotUVDir int
	fd.Dsp.FB[0] = func(block PlaneView, left *leftBackupPlane, top, bot PlaneView, pri, sec, dir, damping int, edges EdgeFlags, bd Depth) {
	}
	fd.Dsp.FB[uvFBIndex(I422)] = func(block PlaneView, left *leftBackupPlane, top, bot PlaneView, pri, sec, dir, damping int, edges EdgeFlags, bd Depth) {
		gotUVDir = dir
	}

	ctx := &Context{NumTileThreads: 1}
	tc := &TaskContext{}
	Brow(ctx, tc, fd, planes, 0, 0, 2, true, 0)

	if want := remapUVDir(I422, 3); gotUVDir != want {
		t.Errorf("chroma dir = %d, want %d (uv_dir[3])", gotUVDir, want)
	}
}

// Scenario F: ping-pong alternation across the sixteen consecutive non-skip
// blocks of a 128-pixel-wide row.
// Block k's left backup must equal the pre-filter pixels immediately to the
// left of it (columns k*8-2, k*8-1), which block k-1 staged into the "other"
// slot before it was filtered.
func TestBrowPingPongAlternation(t *testing.T) {
	planes, fd := newTestFrame(t, 128, 16, I420)
	fd.Params.BW = 32 // 128px / 4.
	mask := NewBlockMaskSb128()
	mask.PublishCdefIdx(0, 0)
	mask.PublishCdefIdx(1, 0)
	var skip [32]uint8 // every 8x8 in the stripe has coded coefficients.
	lo, hi := BuildNoSkipMask(skip)
	mask.PublishNoskipHalf(0, 0, lo)
	mask.PublishNoskipHalf(0, 1, hi)
	fd.Mask[0] = mask
	fd.Params.Cdef.YStrength[0] = 16
	fd.Params.Cdef.UVStrength[0] = 0
	fd.SB128W = 1

	origY := append([]uint16(nil), planes.Y.Pix...)
	yStride := planes.Y.Stride

	var leftSeen []leftBackupPlane
	// The stub never mutates block, so pre-filter pixels stay put and every
	// invocation's backup can be checked against the untouched frame.
	fd.Dsp.FB[0] = func(block PlaneView, left *leftBackupPlane, top, bot PlaneView, pri, sec, dir, damping int, edges EdgeFlags, bd Depth) {
		leftSeen = append(leftSeen, *left)
	}

	ctx := &Context{NumTileThreads: 1}
	tc := &TaskContext{}
	Brow(ctx, tc, fd, planes, 0, 0, 2, true, 0)

	if len(leftSeen) < 2 {
		t.Fatalf("expected at least 2 filtered blocks, got %d", len(leftSeen))
	}

	for k := 1; k < len(leftSeen); k++ {
		col := k * 8
		for y := 0; y < 8; y++ {
			wantC0 := origY[y*yStride+col-2]
			wantC1 := origY[y*yStride+col-1]
			got := leftSeen[k]
			if got[y][0] != wantC0 || got[y][1] != wantC1 {
				t.Errorf("block %d row %d left backup = [%d %d], want [%d %d]",
					k, y, got[y][0], got[y][1], wantC0, wantC1)
			}
		}
	}
}
