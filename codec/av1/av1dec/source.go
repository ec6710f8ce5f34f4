/*
DESCRIPTION
  source.go resolves, per 8x8 block, where the pre-filter top and bottom
  neighborhoods the kernel needs come from: the live frame buffer, the CDEF
  pre-filter line ring, or the deblocked/loop-restoration line buffers —
  depending on tile-threading, sb-row position, and whether horizontal
  resize is active. This is the gnarliest part of the driver (spec §4.6);
  it is transliterated directly from original_source/src/cdef_apply.rs
  rather than re-derived, including the two branches the original authors
  flagged FIXME (see DESIGN.md — these are preserved, not "fixed").

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

// sourceArgs bundles the position/mode state shared by the luma and chroma
// top/bottom resolvers, so the two don't have to repeat a ten-parameter
// signature.
type sourceArgs struct {
	haveTT     bool
	sbrowStart bool
	by         int
	byStart    int
	byEnd      int
	sby        int
	bx         int
	resize     bool
	sb128      bool
	tf         int // 0 or 1: tc.TopPreCdefToggle != 0
}

// resolveLumaSource implements the "top source / bot source" table of §4.6
// for the luma plane.
func resolveLumaSource(lf *LineBuffers, a sourceArgs, bptrsY PlaneView, yStride int) (top, bot PlaneView) {
	sb128i := boolInt(a.sb128)
	haveTTi := boolInt(a.haveTT)

	stY := true
	if a.haveTT {
		switch {
		case a.sbrowStart && a.by == a.byStart:
			if a.resize {
				offset := (a.sby-1)*4*yStride + a.bx*4
				top = lf.CdefLineBuf.View(lf.CdefLpfLine[0]+offset, yStride)
			} else {
				offset := (a.sby*(4<<sb128i)-4)*yStride + a.bx*4
				top = lf.LrLineBuf.View(lf.LrLpfLine[0]+offset, yStride)
			}
			bot = bptrsY.AddRows(8)
			stY = false

		case !a.sbrowStart && a.by+2 >= a.byEnd:
			offset := a.sby*4*yStride + a.bx*4
			top = lf.CdefLineBuf.View(lf.CdefLine[a.tf][0]+offset, yStride)
			if a.resize {
				// FIXME (preserved from original_source/src/cdef_apply.rs):
				// this re-derives an offset into cdef_lpf_line rather than
				// carrying a kept offset across slices; see DESIGN.md.
				logDebug("av1dec: luma bottom source via resize FIXME branch (cdef_lpf_line)", "sby", a.sby, "bx", a.bx)
				offset = (a.sby*4+2)*yStride + a.bx*4
				bot = lf.CdefLineBuf.View(lf.CdefLpfLine[0]+offset, yStride)
			} else {
				// FIXME (preserved): same issue via lr_lpf_line.
				logDebug("av1dec: luma bottom source via non-resize FIXME branch (lr_lpf_line)", "sby", a.sby, "bx", a.bx)
				line := a.sby*(4<<sb128i) + 4*sb128i + 2
				offset = line*yStride + a.bx*4
				bot = lf.LrLineBuf.View(lf.LrLpfLine[0]+offset, yStride)
			}
			stY = false
		}
	}
	if stY {
		offset := haveTTi*a.sby*4*yStride + a.bx*4
		top = lf.CdefLineBuf.View(lf.CdefLine[a.tf][0]+offset, yStride)
		bot = bptrsY.AddRows(8)
	}
	return top, bot
}

// resolveChromaSource implements the same table for chroma plane pl (1 or
// 2), with column/row scaling by subsampling.
func resolveChromaSource(lf *LineBuffers, a sourceArgs, pl int, ssHor, ssVer bool, bptrsPl PlaneView, uvStride int) (top, bot PlaneView) {
	sb128i := boolInt(a.sb128)
	haveTTi := boolInt(a.haveTT)
	ssHorI := boolInt(ssHor)
	ssVerI := boolInt(ssVer)
	col := (a.bx * 4) >> uint(ssHorI)

	stUV := true
	if a.haveTT {
		switch {
		case a.sbrowStart && a.by == a.byStart:
			if a.resize {
				offset := (a.sby-1)*4*uvStride + col
				top = lf.CdefLineBuf.View(lf.CdefLpfLine[pl]+offset, uvStride)
			} else {
				line0 := a.sby*(4<<sb128i) - 4
				offset := line0*uvStride + col
				top = lf.LrLineBuf.View(lf.LrLpfLine[pl]+offset, uvStride)
			}
			bot = bptrsPl.AddRows(8 >> uint(ssVerI))
			stUV = false

		case !a.sbrowStart && a.by+2 >= a.byEnd:
			topOffset := a.sby*8*uvStride + col
			top = lf.CdefLineBuf.View(lf.CdefLine[a.tf][pl]+topOffset, uvStride)
			if a.resize {
				// FIXME (preserved): see resolveLumaSource.
				logDebug("av1dec: chroma bottom source via resize FIXME branch (cdef_lpf_line)", "sby", a.sby, "pl", pl, "bx", a.bx)
				offset := (a.sby*4+2)*uvStride + col
				bot = lf.CdefLineBuf.View(lf.CdefLpfLine[pl]+offset, uvStride)
			} else {
				// FIXME (preserved): see resolveLumaSource.
				logDebug("av1dec: chroma bottom source via non-resize FIXME branch (lr_lpf_line)", "sby", a.sby, "pl", pl, "bx", a.bx)
				line := a.sby*(4<<sb128i) + 4*sb128i + 2
				offset := line*uvStride + col
				bot = lf.LrLineBuf.View(lf.LrLpfLine[pl]+offset, uvStride)
			}
			stUV = false
		}
	}
	if stUV {
		offset := haveTTi*a.sby*8*uvStride + col
		top = lf.CdefLineBuf.View(lf.CdefLine[a.tf][pl]+offset, uvStride)
		bot = bptrsPl.AddRows(8 >> uint(ssVerI))
	}
	return top, bot
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
