/*
DESCRIPTION
  linebuf.go provides the shared pixel-line buffer abstraction the CDEF
  driver reads and writes to stage neighborhoods across superblock rows:
  the pre-filter "cdef_line" ring, the deblocked "cdef_lpf_line", and the
  loop-restoration "lr_lpf_line". These stores are shared across tile-thread
  invocations of the driver; §5 of the design requires disjoint-access
  discipline rather than locking, so this type only ever claims non-
  overlapping pixel ranges (enforced in debug builds, see linebuf_debug.go).

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "github.com/pkg/errors"

// LineBufferStore is a process-shared pixel store indexed by absolute pixel
// offsets, as described by spec's CdefLineBuffer data model. One store
// backs the "cdef_line"/"cdef_lpf_line" family; a second, independent store
// backs "lr_lpf_line".
type LineBufferStore struct {
	Pix []uint16
}

// NewLineBufferStore validates size and returns a store backed by a pixel
// slice of that length.
func NewLineBufferStore(size int) (*LineBufferStore, error) {
	if size <= 0 {
		return nil, errors.Errorf("av1dec: line buffer size must be positive, got %d", size)
	}
	return &LineBufferStore{Pix: make([]uint16, size)}, nil
}

// View returns a PlaneView into the store at the given pixel offset and
// stride. The caller is responsible for ensuring offset..offset+n stays
// within Pix for whatever n it subsequently reads or writes.
func (s *LineBufferStore) View(offset, stride int) PlaneView {
	return PlaneView{Pix: s.Pix, Offset: offset, Stride: stride}
}

// claimWrite records [offset, offset+n) as written by owner, for debug-build
// disjointness checking. It is a no-op in release builds; see
// linebuf_debug.go / linebuf_release.go.
func (s *LineBufferStore) claimWrite(owner string, offset, n int) {
	claimRange(s, owner, offset, n)
}

// LineBuffers collects the base offsets described by spec's CdefLineBuffer:
// two toggled "current sb row" / "previous sb row" pre-filter strips per
// plane, the deblocked-but-pre-CDEF line, and (in a separate store) the
// loop-restoration line.
type LineBuffers struct {
	// CdefLine[toggle][plane] are base offsets into CdefLineBuf.
	CdefLine [2][3]int
	// CdefLpfLine[plane] are base offsets into CdefLineBuf.
	CdefLpfLine [3]int
	// LrLpfLine[plane] are base offsets into LrLineBuf.
	LrLpfLine [3]int

	CdefLineBuf *LineBufferStore
	LrLineBuf   *LineBufferStore
}

// NewLineBuffers validates that both stores are non-nil.
func NewLineBuffers(cdef, lr *LineBufferStore) (*LineBuffers, error) {
	if cdef == nil {
		return nil, errors.New("av1dec: cdef line buffer store is nil")
	}
	if lr == nil {
		return nil, errors.New("av1dec: loop-restoration line buffer store is nil")
	}
	return &LineBuffers{CdefLineBuf: cdef, LrLineBuf: lr}, nil
}
