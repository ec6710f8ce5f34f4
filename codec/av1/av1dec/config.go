/*
DESCRIPTION
  config.go provides the frame-level configuration the CDEF driver needs
  from the (out-of-scope) frame header and sequence header: damping, the
  per-index strength tables, and the superblock/resize toggles that steer
  the top/bottom source selector.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "github.com/pkg/errors"

// CdefParams is the frame_hdr.cdef collaborator contract of spec §6.
type CdefParams struct {
	Damping    uint8
	YStrength  [8]uint8
	UVStrength [8]uint8
}

// NewCdefParams validates damping is in AV1's legal range (3..6 inclusive,
// per the cdef_params bitstream syntax) and returns the params unchanged.
func NewCdefParams(damping uint8, yStrength, uvStrength [8]uint8) (CdefParams, error) {
	if damping < 3 || damping > 6 {
		return CdefParams{}, errors.Errorf("av1dec: damping %d out of range [3,6]", damping)
	}
	return CdefParams{Damping: damping, YStrength: yStrength, UVStrength: uvStrength}, nil
}

// SeqParams is the seq_hdr collaborator contract of spec §6.
type SeqParams struct {
	SB128 bool
}

// FrameSize carries the two widths compared to derive Resize (spec §4.6):
// Width[0] is the decoded width, Width[1] the upscaled (super-res) width.
type FrameSize struct {
	Width [2]int
}

// Resize reports whether horizontal super-res resizing is active.
func (s FrameSize) Resize() bool { return s.Width[0] != s.Width[1] }

// Params bundles everything Brow needs from the frame and sequence headers,
// beyond the per-invocation arguments already named in spec §6.
type Params struct {
	Cdef     CdefParams
	Seq      SeqParams
	Size     FrameSize
	Layout   PixelLayout
	Depth    Depth
	// BW, BH are the frame dimensions in 4-pixel block units (dav1d's
	// bw4/bh4), matching the units by/bx are expressed in throughout the
	// driver.
	BW, BH int
}

// NewParams validates depth and dimensions, then returns Params unchanged.
func NewParams(cdef CdefParams, seq SeqParams, size FrameSize, layout PixelLayout, depth Depth, bw, bh int) (Params, error) {
	if !depth.Valid() {
		return Params{}, errors.Errorf("av1dec: invalid bit depth %d", depth)
	}
	if bw <= 0 || bh <= 0 {
		return Params{}, errors.Errorf("av1dec: invalid frame dimensions %dx%d (4px units)", bw, bh)
	}
	return Params{Cdef: cdef, Seq: seq, Size: size, Layout: layout, Depth: depth, BW: bw, BH: bh}, nil
}
