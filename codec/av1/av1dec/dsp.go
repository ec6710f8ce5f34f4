/*
DESCRIPTION
  dsp.go declares the kernel function-table contract the driver dispatches
  into (spec §6): the direction/variance probe and the primary+secondary
  filter kernels for luma and the two chroma subsampling cases. Per DESIGN
  NOTES §9, this table is populated once at decoder init and treated as
  read-only by the driver — there is no dynamic dispatch surface beyond it.

  DefaultDsp provides a pure-Go reference implementation, grounded in the
  real dav1d/rav1d algorithm's overall shape (direction search by gradient
  cost, sentinel-padded unavailable taps, the constrain() clipping
  function) but not claiming bit-exact tap geometry or weights — bit-exact
  kernel math is an explicit non-goal (spec §1, §7 Non-goals).

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

// DirFunc probes an 8x8 luma block and returns a direction in 0..7 plus a
// variance statistic used to soften primary strength.
type DirFunc func(block PlaneView, variance *uint32, bd Depth) int

// FilterFunc applies the primary+secondary CDEF kernel in place to an 8x8
// block. left holds the pre-filter left-neighbor pixels; its contents are
// only meaningful when HaveLeft is set (Brow always passes one of its two
// ping-pong slots, never nil). top and bot are 2-row pre-filter neighborhoods
// resolved by resolveLumaSource/resolveChromaSource.
type FilterFunc func(block PlaneView, left *leftBackupPlane, top, bot PlaneView, pri, sec, dir, damping int, edges EdgeFlags, bd Depth)

// Dsp is the kernel function table: Dir is the direction probe, and FB[idx]
// is the filter kernel for idx 0 (4:4:4 or luma), 1 (4:2:2), 2 (4:2:0).
// Luma dispatch always uses FB[0].
type Dsp struct {
	Dir DirFunc
	FB  [3]FilterFunc
}

// uvFBIndex derives the chroma FB table index from layout, matching
// original_source/src/cdef_apply.rs's `uv_idx = I444 - layout`.
func uvFBIndex(layout PixelLayout) int {
	return int(I444) - int(layout)
}

// sentinelVeryLarge is dav1d's CDEF_VERY_LARGE sentinel: a tap difference
// this large is always clamped to zero contribution by constrain(), which
// is how the reference kernel disables taps that would read past an
// unavailable edge without branching per-tap.
const sentinelVeryLarge = 0x4000

// constrain is dav1d's cdef_constrain: clamp diff's magnitude to threshold,
// softened by damping.
func constrain(diff, threshold, damping int) int {
	if threshold == 0 {
		return 0
	}
	shift := damping - floorLog2(threshold)
	if shift < 0 {
		shift = 0
	}
	ad := absInt(diff)
	mag := threshold - (ad >> uint(shift))
	if mag < 0 {
		mag = 0
	}
	if ad < mag {
		mag = ad
	}
	if diff < 0 {
		return -mag
	}
	return mag
}

// cdefDirOffsets gives the (dx, dy) unit offsets for the eight CDEF
// directions; primary taps sample at 1x and 2x this offset (and their
// negations), secondary taps at 1x the offsets rotated two steps either way
// from it. This reproduces the general
// fan shape of the real direction table without claiming the exact AV1 tap
// placement.
var cdefDirOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// DefaultDsp returns a reference (non-SIMD) Dsp good enough to drive the
// scenarios in spec §8.
func DefaultDsp() Dsp {
	return Dsp{
		Dir: defaultDir,
		FB:  [3]FilterFunc{defaultFilter, defaultFilter, defaultFilter},
	}
}

// defaultDir computes a direction by minimizing a simple gradient-energy
// cost along each of the eight directions over the 8x8 block, and reports
// the spread between the best and worst cost as variance.
func defaultDir(block PlaneView, variance *uint32, bd Depth) int {
	best, bestCost, worstCost := 0, -1, 0
	for d := 0; d < 8; d++ {
		dx, dy := cdefDirOffsets[d][0], cdefDirOffsets[d][1]
		cost := 0
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				px := int(sampleClamped(block, x, y))
				nx := int(sampleClamped(block, x+dx, y+dy))
				diff := px - nx
				cost += diff * diff
			}
		}
		if bestCost < 0 || cost < bestCost {
			bestCost, best = cost, d
		}
		if cost > worstCost {
			worstCost = cost
		}
	}
	if variance != nil {
		v := worstCost - bestCost
		if v < 0 {
			v = 0
		}
		*variance = uint32(v)
	}
	return best
}

// sampleClamped reads block pixel (x,y), clamping to the 8x8 block's own
// edges — used only by the reference direction probe, which (unlike the
// filter kernel) has no access to neighbor backups.
func sampleClamped(block PlaneView, x, y int) uint16 {
	if x < 0 {
		x = 0
	} else if x > 7 {
		x = 7
	}
	if y < 0 {
		y = 0
	} else if y > 7 {
		y = 7
	}
	return block.At(y*block.Stride + x)
}

// defaultFilter applies a direction-aware primary+secondary tap filter in
// place over the 8x8 block, using left/top/bot for samples outside the
// block and the sentinel trick for edges the caller marked unavailable.
func defaultFilter(block PlaneView, left *leftBackupPlane, top, bot PlaneView, pri, sec, dir, damping int, edges EdgeFlags, bd Depth) {
	if pri == 0 && sec == 0 {
		return
	}

	maxVal := bd.Max()
	primDX, primDY := cdefDirOffsets[dir][0], cdefDirOffsets[dir][1]
	secDir1 := cdefDirOffsets[(dir+2)%8]
	secDir2 := cdefDirOffsets[(dir+6)%8]

	// Taps can reach any row of the block (not just the one being written),
	// via diagonal and vertical directions, so the whole block is snapshotted
	// before any pixel in it is overwritten; writing straight into block
	// would feed already-filtered samples back in as if they were pre-filter
	// neighbors.
	var orig [8][8]uint16
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			orig[y][x] = block.At(y*block.Stride + x)
		}
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := int(orig[y][x])
			sum := 0
			wSum := 0

			if pri != 0 {
				p1 := sampleTap(orig, block, left, top, bot, x+primDX, y+primDY, edges)
				p2 := sampleTap(orig, block, left, top, bot, x-primDX, y-primDY, edges)
				sum += constrain(p1-px, pri, damping) * 3
				sum += constrain(p2-px, pri, damping) * 3
				wSum += 6
				p1d2 := sampleTap(orig, block, left, top, bot, x+2*primDX, y+2*primDY, edges)
				p2d2 := sampleTap(orig, block, left, top, bot, x-2*primDX, y-2*primDY, edges)
				sum += constrain(p1d2-px, pri, damping) * 2
				sum += constrain(p2d2-px, pri, damping) * 2
				wSum += 4
			}
			if sec != 0 {
				for _, d := range [2][2]int{secDir1, secDir2} {
					s1 := sampleTap(orig, block, left, top, bot, x+d[0], y+d[1], edges)
					s2 := sampleTap(orig, block, left, top, bot, x-d[0], y-d[1], edges)
					sum += constrain(s1-px, sec, damping) * 2
					sum += constrain(s2-px, sec, damping) * 2
					wSum += 4
				}
			}
			if wSum == 0 {
				continue
			}
			adj := (sum + wSum/2) / wSum
			out := px + adj
			if out < 0 {
				out = 0
			} else if out > maxVal {
				out = maxVal
			}
			block.Set(y*block.Stride+x, uint16(out))
		}
	}
}

// sampleTap reads one tap sample for the in-place filter above, sourcing
// from: orig (the pre-filter snapshot of the whole 8x8 block, for any
// in-bounds row/column), block (for columns at and past x=8, which belong
// to the next block to the right and have not been filtered by this call),
// the left backup (for columns -2/-1 when available), or top/bot (for rows
// -2/-1 and 8/9). Columns/rows pointing off an unavailable edge return the
// sentinel so constrain() zeroes their contribution.
func sampleTap(orig [8][8]uint16, block PlaneView, left *leftBackupPlane, top, bot PlaneView, x, y int, edges EdgeFlags) int {
	switch {
	case y < 0:
		if !edges.Has(HaveTop) {
			return sentinelVeryLarge
		}
		return int(top.At((y+2)*top.Stride + x))
	case y >= 8:
		if !edges.Has(HaveBottom) {
			return sentinelVeryLarge
		}
		return int(bot.At((y-8)*bot.Stride + x))
	}

	if x < 0 {
		if !edges.Has(HaveLeft) || left == nil {
			return sentinelVeryLarge
		}
		return int(left[y][2+x])
	}
	if x >= 8 {
		if !edges.Has(HaveRight) {
			return sentinelVeryLarge
		}
		return int(block.At(y*block.Stride + x))
	}
	return int(orig[y][x])
}
