/*
DESCRIPTION
  pal.go packs a palette-index plane into 2-pixels-per-byte storage and
  fills invisible edge padding, grounded in original_source/src/pal.rs's
  pal_idx_finish. It is peripheral to the CDEF driver (spec §1 lists
  palette-index packing as "included in sources but peripheral to the
  core") — Brow never calls it — but palette and CDEF buffers share the
  same picture storage layer in a complete decoder, so it is carried here
  as a sibling component of the picture-buffer domain.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "github.com/pkg/errors"

// PackPaletteIndices packs the visible w x h region of an unpacked
// bw x bh palette-index plane (one index per byte, values 0..15) into 4-bit
// nibbles (two indices per byte). The invisible columns up to bw are filled
// from the index at column w, which the caller has already set to the edge
// value, and the last visible row is replicated into the invisible rows up
// to bh, the way AV1 spec 7.11.4 requires.
// If dst is nil, src is packed in place.
func PackPaletteIndices(dst, src []byte, bw, bh, w, h int) ([]byte, error) {
	if err := validatePalDims(bw, bh, w, h); err != nil {
		return nil, err
	}
	if len(src) < bw*bh {
		return nil, errors.Errorf("av1dec: palette src too short: have %d, need %d", len(src), bw*bh)
	}

	dstW, dstBW := w/2, bw/2
	inPlace := dst == nil
	if inPlace {
		dst = src
	} else if len(dst) < dstBW*bh {
		return nil, errors.Errorf("av1dec: palette dst too short: have %d, need %d", len(dst), dstBW*bh)
	}

	for y := 0; y < h; y++ {
		srcRow := src[y*bw:]
		dstRow := dst[y*dstBW:]
		// Packing in place: read both source samples before writing the
		// packed byte, since dstRow and srcRow alias for x < dstW.
		for x := 0; x < dstW; x++ {
			lo, hi := srcRow[2*x], srcRow[2*x+1]
			dstRow[x] = lo | hi<<4
		}
		if dstW < dstBW {
			// Column w is the first invisible column; callers are expected
			// to have already replicated the edge pixel into it before
			// packing, so propagating it is correct rather than circular.
			pad := 0x11 * srcRow[w]
			for x := dstW; x < dstBW; x++ {
				dstRow[x] = pad
			}
		}
	}

	if h < bh {
		lastRow := dst[(h-1)*dstBW : h*dstBW]
		for y := h; y < bh; y++ {
			copy(dst[y*dstBW:(y+1)*dstBW], lastRow)
		}
	}

	if inPlace {
		return dst[:dstBW*bh], nil
	}
	return dst, nil
}

func validatePalDims(bw, bh, w, h int) error {
	if bw < 4 || bw > 64 || bw&(bw-1) != 0 {
		return errors.Errorf("av1dec: palette bw %d must be a power of two in [4,64]", bw)
	}
	if bh < 4 || bh > 64 || bh&(bh-1) != 0 {
		return errors.Errorf("av1dec: palette bh %d must be a power of two in [4,64]", bh)
	}
	if w < 4 || w > bw || w&3 != 0 {
		return errors.Errorf("av1dec: palette w %d must be a multiple of 4 in [4,%d]", w, bw)
	}
	if h < 4 || h > bh || h&3 != 0 {
		return errors.Errorf("av1dec: palette h %d must be a multiple of 4 in [4,%d]", h, bh)
	}
	return nil
}
