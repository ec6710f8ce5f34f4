/*
DESCRIPTION
  cdef.go is the package's entry point: Brow sweeps one superblock row of
  one plane group, deciding per 8x8 block whether to filter, staging the
  pre-filter neighborhoods an in-place kernel would otherwise clobber, and
  dispatching into the Dsp kernel table. It is transliterated from
  rav1d_cdef_brow in original_source/src/cdef_apply.rs, including its two
  FIXME-flagged offset/pointer branches in source.go, which are preserved
  rather than corrected (see DESIGN.md).

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "fmt"

// sbsz is the number of 4-pixel-wide block columns per 64-pixel-wide
// superblock.
const sbsz = 16

// Brow filters one superblock row of planes in place. lflvlOffset indexes
// into fd.Mask (the sb128-column array); byStart/byEnd are a half-open
// block-row range in 4-pixel units; sbrowStart marks the first invocation
// of a tile-thread slice; sby is the superblock-row index within the frame.
func Brow(ctx *Context, tc *TaskContext, fd *FrameData, planes PlaneGroup, lflvlOffset, byStart, byEnd int, sbrowStart bool, sby int) {
	p := fd.Params
	bd := p.Depth
	bitdepthMin8 := bd.BitdepthMin8()

	edges := HaveBottom
	if byStart > 0 {
		edges |= HaveTop
	}

	ptrs := planes
	sb64w := fd.SB64W()
	damping := int(p.Cdef.Damping) + bitdepthMin8
	layout := p.Layout
	uvIdx := uvFBIndex(layout)
	if uvIdx < 0 || uvIdx > 2 {
		logWarning("av1dec: uvIdx out of range", "uvIdx", uvIdx, "layout", layout)
	}
	ssHor, ssVer := layout.SSHor(), layout.SSVer()

	haveTT := ctx.HaveTileThreads()
	sb128 := p.Seq.SB128
	resize := p.Size.Resize()
	yStride := ptrs.Y.Stride
	var uvStride int
	if layout != I400 {
		uvStride = ptrs.U.Stride
	}

	var lrBak [2]leftBackup
	bit := false

	for by := byStart; by < byEnd; by += 2 {
		logDebug("av1dec: sb row begin", "sby", sby, "by", by)
		tf := boolInt(tc.TopPreCdefToggle != 0)
		byIdx := (by & 30) >> 1
		if by+2 >= p.BH {
			edges = edges.Clear(HaveBottom)
		}

		if (!haveTT || sbrowStart || by+2 < byEnd) && edges.Has(HaveBottom) {
			notTF := 1 - tf
			dstOff := [3]int{
				fd.LF.CdefLine[notTF][0] + boolInt(haveTT)*sby*4*yStride,
				fd.LF.CdefLine[notTF][1] + boolInt(haveTT)*sby*8*uvStride,
				fd.LF.CdefLine[notTF][2] + boolInt(haveTT)*sby*8*uvStride,
			}
			// Under tile threading each sby owns a disjoint slice of the ring,
			// so the claim owner must vary with sby for the debug overlap check
			// to catch a miscomputed, genuinely colliding dstOff. Without tile
			// threading the two toggle slots are a shared ring reused by every
			// sb row in turn, so the owner is keyed by the toggle slot instead:
			// repeat writes to the same slot across sb rows are the intended
			// reuse, not a collision.
			owner := fmt.Sprintf("toggle=%d", notTF)
			if haveTT {
				owner = fmt.Sprintf("sby=%d", sby)
			}
			backup2lines(fd.LF.CdefLineBuf, dstOff, ptrs, owner)
		}

		iptrs := ptrs
		edges = edges.Clear(HaveLeft).Set(HaveRight)
		var prevFlag backupFlags
		lastSkip := true

		for sbx := 0; sbx < sb64w; sbx++ {
			sb128x := sbx >> 1
			sb64Idx := ((by & sbsz) >> 3) + (sbx & 1)
			mask := fd.Mask[lflvlOffset+sb128x]
			cdefIdx := mask.LoadCdefIdx(sb64Idx)

			if cdefIdx == NoCdef || (p.Cdef.YStrength[cdefIdx] == 0 && p.Cdef.UVStrength[cdefIdx] == 0) {
				logDebug("av1dec: sb64 skipped, no cdef strength", "sby", sby, "by", by, "sbx", sbx, "cdefIdx", cdefIdx)
				lastSkip = true
			} else {
				noskipMask := mask.LoadNoskipMask(byIdx)

				yLvl := p.Cdef.YStrength[cdefIdx]
				uvLvl := p.Cdef.UVStrength[cdefIdx]
				flag := selectFlags(backupY, yLvl != 0) | selectFlags(backupUV, uvLvl != 0)

				yPri, ySec := decodeLevel(yLvl, bitdepthMin8)
				uvPri, uvSec := decodeLevel(uvLvl, bitdepthMin8)

				bptrs := iptrs
				bxEnd := minInt((sbx+1)*sbsz, p.BW)
				for bx := sbx * sbsz; bx < bxEnd; bx += 2 {
					if bx+2 >= p.BW {
						edges = edges.Clear(HaveRight)
					}

					bxMask := uint32(3) << uint(bx&30)
					if noskipMask&bxMask == 0 {
						logDebug("av1dec: 8x8 skipped, no coded coefficients", "sby", sby, "by", by, "bx", bx)
						lastSkip = true
					} else {
						doLeft := flag
						if !lastSkip {
							doLeft = (prevFlag ^ flag) & flag
						}
						prevFlag = flag

						if doLeft != 0 && edges.Has(HaveLeft) {
							backup2x8(&lrBak[boolInt(bit)], bptrs, 0, doLeft)
						}
						if edges.Has(HaveRight) {
							backup2x8(&lrBak[1-boolInt(bit)], bptrs, 8, flag)
						}

						var variance uint32
						dir := 0
						if yPri != 0 || uvPri != 0 {
							dir = fd.Dsp.Dir(bptrs.Y, &variance, bd)
						}

						args := sourceArgs{
							haveTT: haveTT, sbrowStart: sbrowStart,
							by: by, byStart: byStart, byEnd: byEnd,
							sby: sby, bx: bx, resize: resize, sb128: sb128, tf: tf,
						}
						top, bot := resolveLumaSource(fd.LF, args, bptrs.Y, yStride)

						left := lrBak[boolInt(bit)].plane(0)
						if yPri != 0 {
							adjYPri := adjustStrength(yPri, int(variance))
							if adjYPri != 0 || ySec != 0 {
								fd.Dsp.FB[0](bptrs.Y, left, top, bot, adjYPri, ySec, dir, damping, edges, bd)
							}
						} else if ySec != 0 {
							fd.Dsp.FB[0](bptrs.Y, left, top, bot, 0, ySec, 0, damping, edges, bd)
						}

						if uvLvl != 0 {
							if layout == I400 {
								panic("av1dec: chroma strength set for monochrome layout")
							}
							uvdir := 0
							if uvPri != 0 {
								uvdir = remapUVDir(layout, dir)
							}
							for pl := 1; pl <= 2; pl++ {
								bptrsPl := bptrs.Plane(pl)
								uvTop, uvBot := resolveChromaSource(fd.LF, args, pl, ssHor, ssVer, bptrsPl, uvStride)
								leftUV := lrBak[boolInt(bit)].plane(pl)
								fd.Dsp.FB[uvIdx](bptrsPl, leftUV, uvTop, uvBot, uvPri, uvSec, uvdir, damping-1, edges, bd)
							}
						}

						bit = !bit
						lastSkip = false
					}
					bptrs = bptrs.AddCols(8)
					edges = edges.Set(HaveLeft)
				}
			}
			iptrs = iptrs.AddCols(sbsz * 4)
			edges = edges.Set(HaveLeft)
		}
		ptrs = ptrs.AddRows(8)
		tc.TopPreCdefToggle ^= 1
		edges = edges.Set(HaveTop)
		logDebug("av1dec: sb row end", "sby", sby, "by", by)
	}
}
