/*
DESCRIPTION
  depth.go provides the bit depth abstraction that the CDEF driver and its
  collaborators are generic over.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "github.com/pkg/errors"

// Depth is a sample bit depth. Pixels are always stored as uint16 so that a
// single code path serves 8, 10 and 12 bit content; Depth only affects the
// maximum sample value and the bitdepth_min_8 strength-shift used when
// decoding per-index strengths.
type Depth uint8

const (
	Depth8  Depth = 8
	Depth10 Depth = 10
	Depth12 Depth = 12
)

// Valid reports whether d is one of the three depths AV1 permits.
func (d Depth) Valid() bool {
	return d == Depth8 || d == Depth10 || d == Depth12
}

// Max returns the largest representable sample value at this depth.
func (d Depth) Max() int {
	return (1 << uint(d)) - 1
}

// BitdepthMin8 is the `bd - 8` shift frame_hdr strengths are scaled by.
func (d Depth) BitdepthMin8() int {
	return int(d) - 8
}

// NewDepth validates bd and returns the corresponding Depth.
func NewDepth(bd int) (Depth, error) {
	d := Depth(bd)
	if !d.Valid() {
		return 0, errors.Errorf("av1dec: invalid bit depth %d", bd)
	}
	return d, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
