/*
DESCRIPTION
  mask.go provides the per-128-pixel-wide-superblock-column CDEF control
  data published by the parse stage: which filter index each 64x64 uses,
  and which 8x8 blocks have any coded coefficients. The driver only ever
  reads these fields, and does so with relaxed atomics since the publisher
  establishes happens-before externally (see §5).

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "sync/atomic"

// NoCdef is the cdef_idx sentinel meaning "no CDEF for this sb64".
const NoCdef = -1

// BlockMaskSb128 holds the CDEF control data for one aligned 128x128
// superblock: 128 pixels wide and 128 pixel rows tall (16 rows of 8x8
// blocks). CdefIdx is indexed by sb64_idx (0..3: 2 * sb64 row + sb64 column
// within the sb128). NoskipMask is indexed
// by by_idx (0..15, one per 8-row slice of the sb128 stripe) and then by
// half (0: low 16 columns, 1: high 16 columns).
type BlockMaskSb128 struct {
	CdefIdx    [4]atomic.Int32
	NoskipMask [16][2]atomic.Uint32
}

// NewBlockMaskSb128 returns a mask with every cdef_idx set to NoCdef and
// every noskip bit clear, matching an all-skip sb128 column.
func NewBlockMaskSb128() *BlockMaskSb128 {
	m := &BlockMaskSb128{}
	for i := range m.CdefIdx {
		m.CdefIdx[i].Store(NoCdef)
	}
	return m
}

// LoadCdefIdx reads cdef_idx for sb64Idx with relaxed semantics.
func (m *BlockMaskSb128) LoadCdefIdx(sb64Idx int) int {
	return int(m.CdefIdx[sb64Idx].Load())
}

// LoadNoskipMask reconstructs the 32-bit noskip bitmap for byIdx by
// concatenating the high half above the low half, per spec's data model.
func (m *BlockMaskSb128) LoadNoskipMask(byIdx int) uint32 {
	lo := m.NoskipMask[byIdx][0].Load()
	hi := m.NoskipMask[byIdx][1].Load()
	return hi<<16 | lo
}

// PublishCdefIdx and PublishNoskipHalf are used by the parse stage (or by
// tests constructing fixtures) to publish control data. The CDEF driver
// itself never calls these — it is read-only, per spec's invariant that
// "the driver only reads; it never writes them".

// PublishCdefIdx stores idx for sb64Idx with relaxed semantics.
func (m *BlockMaskSb128) PublishCdefIdx(sb64Idx, idx int) {
	m.CdefIdx[sb64Idx].Store(int32(idx))
}

// PublishNoskipHalf stores one 16-bit half of the noskip bitmap for byIdx.
// half must be 0 (low 16 columns) or 1 (high 16 columns).
func (m *BlockMaskSb128) PublishNoskipHalf(byIdx, half int, bits uint16) {
	m.NoskipMask[byIdx][half].Store(uint32(bits))
}
