/*
DESCRIPTION
  edge.go provides the edge-availability bitset threaded through the CDEF
  sweep and passed verbatim to the filter kernels so they can clamp their
  taps at frame boundaries.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

// EdgeFlags records which neighbors of an 8x8 block are available for the
// kernel to read taps from.
type EdgeFlags uint8

const (
	HaveLeft EdgeFlags = 1 << iota
	HaveRight
	HaveTop
	HaveBottom
)

// Has reports whether all bits in f are set.
func (e EdgeFlags) Has(f EdgeFlags) bool { return e&f == f }

// Set returns e with f set.
func (e EdgeFlags) Set(f EdgeFlags) EdgeFlags { return e | f }

// Clear returns e with f cleared.
func (e EdgeFlags) Clear(f EdgeFlags) EdgeFlags { return e &^ f }
