/*
DESCRIPTION
  strength.go decodes a per-sb64 cdef_idx into primary/secondary Y and UV
  strengths, softens primary strength by local variance, and remaps the
  probed luma direction for chroma, per spec §4.4, §4.5.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "math/bits"

// decodeLevel splits an 8-bit frame_hdr strength entry into primary and
// secondary strengths, sign-extended for bitdepth, per spec §3's
// StrengthTable and §4.4 step 4: lvl encodes (pri<<2)|sec, with sec==3
// bumped to 4 before both are shifted left by bitdepth-8.
func decodeLevel(lvl uint8, bitdepthMin8 int) (pri, sec int) {
	pri = int(lvl>>2) << uint(bitdepthMin8)
	sec = int(lvl & 3)
	if sec == 3 {
		sec++
	}
	sec <<= uint(bitdepthMin8)
	return pri, sec
}

// adjustStrength softens a primary strength by local variance, per §4.5.
// adjustStrength(s, 0) == 0; larger variance saturates i at 12.
func adjustStrength(s, variance int) int {
	if variance == 0 {
		return 0
	}
	v := variance >> 6
	i := 0
	if v != 0 {
		i = floorLog2(v)
		if i > 12 {
			i = 12
		}
	}
	return (s*(4+i) + 8) >> 4
}

// floorLog2 returns floor(log2(v)) for v > 0.
func floorLog2(v int) int {
	return bits.Len(uint(v)) - 1
}

// uvDirIdentity and uvDirI422 are the two rows of spec's UvDirTable.
var (
	uvDirIdentity = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	uvDirI422     = [8]int{7, 0, 2, 4, 5, 6, 6, 6}
)

// remapUVDir maps a probed luma direction to the chroma direction used by
// the chroma kernel, per spec §4.5 / §8 scenario E.
func remapUVDir(layout PixelLayout, dir int) int {
	if layout == I422 {
		return uvDirI422[dir]
	}
	return uvDirIdentity[dir]
}

// backupFlags marks which planes backup2x8 should stage for a given 8x8
// block, per spec §4.3.
type backupFlags uint8

const (
	backupY backupFlags = 1 << iota
	backupUV
)

// selectFlags returns f if cond holds, else the empty set — the Go
// equivalent of the Rust Backup2x8Flags::select helper in
// original_source/src/cdef_apply.rs.
func selectFlags(f backupFlags, cond bool) backupFlags {
	if cond {
		return f
	}
	return 0
}
