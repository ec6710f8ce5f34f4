/*
DESCRIPTION
  plane.go provides the pixel-plane view types the CDEF driver reads and
  writes in place, and the chroma subsampling derived from picture layout.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "github.com/pkg/errors"

// PixelLayout mirrors AV1's seq_hdr chroma subsampling configurations.
type PixelLayout int

const (
	I400 PixelLayout = iota // monochrome, no chroma planes.
	I420
	I422
	I444
)

// String implements fmt.Stringer for diagnostic logging.
func (l PixelLayout) String() string {
	switch l {
	case I400:
		return "I400"
	case I420:
		return "I420"
	case I422:
		return "I422"
	case I444:
		return "I444"
	default:
		return "unknown"
	}
}

// SSHor reports horizontal chroma subsampling: every layout but 4:4:4.
func (l PixelLayout) SSHor() bool { return l != I444 }

// SSVer reports vertical chroma subsampling: only 4:2:0.
func (l PixelLayout) SSVer() bool { return l == I420 }

// PlaneView is a buffer pointer (Pix) plus a pixel offset into it, with the
// plane's row stride in pixels (negative for bottom-up layouts). Adding an
// integer count shifts Offset by that many pixels; AddRows(k) advances k
// rows.
type PlaneView struct {
	Pix    []uint16
	Offset int
	Stride int
}

// Add returns the view shifted by n pixels.
func (p PlaneView) Add(n int) PlaneView {
	p.Offset += n
	return p
}

// AddRows returns the view shifted down k rows (k may be negative).
func (p PlaneView) AddRows(k int) PlaneView {
	return p.Add(k * p.Stride)
}

// At returns the pixel i places past the view's offset.
func (p PlaneView) At(i int) uint16 {
	return p.Pix[p.Offset+i]
}

// Set writes the pixel i places past the view's offset.
func (p PlaneView) Set(i int, v uint16) {
	p.Pix[p.Offset+i] = v
}

// Slice returns the n pixels starting at the view's offset.
func (p PlaneView) Slice(n int) []uint16 {
	return p.Pix[p.Offset : p.Offset+n]
}

// PlaneGroup is a Y/U/V triple of plane views sharing a picture layout. For
// I400, U and V are zero-valued and must never be dereferenced.
type PlaneGroup struct {
	Y, U, V PlaneView
	Layout  PixelLayout
}

// Plane returns U for pl == 1 and V for pl == 2. pl must be 1 or 2.
func (g PlaneGroup) Plane(pl int) PlaneView {
	if pl == 1 {
		return g.U
	}
	return g.V
}

// WithPlane returns a copy of g with U (pl==1) or V (pl==2) replaced.
func (g PlaneGroup) WithPlane(pl int, v PlaneView) PlaneGroup {
	if pl == 1 {
		g.U = v
	} else {
		g.V = v
	}
	return g
}

// AddRows advances every present plane down k luma rows, honoring chroma
// vertical subsampling (k >> ssVer rows for chroma).
func (g PlaneGroup) AddRows(k int) PlaneGroup {
	g.Y = g.Y.AddRows(k)
	if g.Layout == I400 {
		return g
	}
	ck := k
	if g.Layout.SSVer() {
		ck >>= 1
	}
	g.U = g.U.AddRows(ck)
	g.V = g.V.AddRows(ck)
	return g
}

// AddCols advances every present plane right by n luma columns, honoring
// chroma horizontal subsampling.
func (g PlaneGroup) AddCols(n int) PlaneGroup {
	g.Y = g.Y.Add(n)
	if g.Layout == I400 {
		return g
	}
	cn := n
	if g.Layout.SSHor() {
		cn >>= 1
	}
	g.U = g.U.Add(cn)
	g.V = g.V.Add(cn)
	return g
}

// NewPlaneGroup validates that Y (and, for non-monochrome layouts, U and V)
// has a non-zero stride and a backing slice large enough for one pixel at
// the given offset, then returns the group unchanged.
func NewPlaneGroup(y, u, v PlaneView, layout PixelLayout) (PlaneGroup, error) {
	if err := validatePlane("Y", y); err != nil {
		return PlaneGroup{}, err
	}
	if layout != I400 {
		if err := validatePlane("U", u); err != nil {
			return PlaneGroup{}, err
		}
		if err := validatePlane("V", v); err != nil {
			return PlaneGroup{}, err
		}
	}
	return PlaneGroup{Y: y, U: u, V: v, Layout: layout}, nil
}

func validatePlane(name string, p PlaneView) error {
	if p.Stride == 0 {
		return errors.Errorf("av1dec: %s plane has zero stride", name)
	}
	if p.Offset < 0 || p.Offset >= len(p.Pix) {
		return errors.Errorf("av1dec: %s plane offset %d out of range [0,%d)", name, p.Offset, len(p.Pix))
	}
	return nil
}
