/*
DESCRIPTION
  backup.go stages the two orthogonal pre-filter neighborhoods the in-place
  CDEF kernel would otherwise lose: a per-sb-row horizontal strip
  (backup2lines, §4.2) feeding the next sb row's top neighborhood, and a
  per-8x8 vertical strip (backup2x8, §4.3) feeding the next block's left
  neighborhood through a two-slot ping-pong.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "fmt"

// leftBackupPlane is an 8-row by 2-column tile of pre-filter pixels for one
// plane, per spec's LeftBackup data model.
type leftBackupPlane [8][2]uint16

// leftBackup holds one ping-pong slot's worth of left-neighborhood pixels
// for all three planes.
type leftBackup struct {
	Y, U, V leftBackupPlane
}

// backup2lines copies the pre-filter rows 6 and 7 (luma) of the current sb
// row — and, unless I400, the corresponding chroma rows — into the "other"
// slot of the cdef_line ring so the next sb row can read them as top
// neighbors. See spec §4.2. owner identifies the calling invocation for the
// debug-build disjointness check (linebuf_debug.go): callers are expected
// to key it by tile-thread slice (e.g. sby) when invocations write disjoint
// ranges, or by ring slot when invocations intentionally reuse the same
// range in turn — see the call site in cdef.go.
func backup2lines(dst *LineBufferStore, dstOff [3]int, src PlaneGroup, owner string) {
	yStride := src.Y.Stride
	yLen := 2 * absInt(yStride)
	yBias := 0
	if yStride < 0 {
		yBias = 1
	}
	ySrc := src.Y.AddRows(6 + yBias)
	yDstOffset := dstOff[0] + yBias*yStride
	dst.claimWrite(owner+":y", yDstOffset, yLen)
	copy(dst.Pix[yDstOffset:yDstOffset+yLen], ySrc.Slice(yLen))

	if src.Layout == I400 {
		return
	}

	srcRow := 6
	if src.Layout == I420 {
		srcRow = 2
	}
	for pl := 1; pl <= 2; pl++ {
		plane := src.Plane(pl)
		uvStride := plane.Stride
		uvLen := 2 * absInt(uvStride)
		uvBias := 0
		if uvStride < 0 {
			uvBias = 1
		}
		uvSrc := plane.AddRows(srcRow + uvBias)
		uvDstOffset := dstOff[pl] + uvBias*uvStride
		dst.claimWrite(fmt.Sprintf("%s:uv%d", owner, pl), uvDstOffset, uvLen)
		copy(dst.Pix[uvDstOffset:uvDstOffset+uvLen], uvSrc.Slice(uvLen))
	}
}

// backup2x8 stages the 2-wide x 8-tall (subsampled for chroma) pre-filter
// tile immediately left of column xOff of src (columns xOff-2 and xOff-1)
// into dst, for whichever planes flag selects. See spec §4.3.
func backup2x8(dst *leftBackup, src PlaneGroup, xOff int, flag backupFlags) {
	if flag&backupY != 0 {
		for y := 0; y < 8; y++ {
			row := src.Y.Add(y*src.Y.Stride + xOff - 2)
			dst.Y[y][0] = row.At(0)
			dst.Y[y][1] = row.At(1)
		}
	}

	if src.Layout == I400 || flag&backupUV == 0 {
		return
	}

	ssHor, ssVer := 0, 0
	if src.Layout.SSHor() {
		ssHor = 1
	}
	if src.Layout.SSVer() {
		ssVer = 1
	}
	xOffC := xOff >> uint(ssHor)
	h := 8 >> uint(ssVer)

	for y := 0; y < h; y++ {
		uRow := src.U.Add(y*src.U.Stride + xOffC - 2)
		dst.U[y][0] = uRow.At(0)
		dst.U[y][1] = uRow.At(1)

		vRow := src.V.Add(y*src.V.Stride + xOffC - 2)
		dst.V[y][0] = vRow.At(0)
		dst.V[y][1] = vRow.At(1)
	}
}

// plane returns a pointer to the leftBackupPlane for pl (0: Y, 1: U,
// 2: V) within b.
func (b *leftBackup) plane(pl int) *leftBackupPlane {
	switch pl {
	case 0:
		return &b.Y
	case 1:
		return &b.U
	default:
		return &b.V
	}
}
