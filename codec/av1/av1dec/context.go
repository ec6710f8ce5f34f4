/*
DESCRIPTION
  context.go provides the per-decoder and per-task state the driver reads
  and mutates, and the frame-level aggregate (loop filter masks, line
  buffers, kernel table) it is handed per spec §6.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

// Context is the decoder-wide state relevant to the driver: only the tile
// thread count, which steers the top/bottom source selector (§4.6).
type Context struct {
	NumTileThreads int
}

// HaveTileThreads reports whether more than one tile thread is configured,
// i.e. whether this Brow invocation may race other sb-row invocations over
// shared line buffers.
func (c *Context) HaveTileThreads() bool { return c.NumTileThreads > 1 }

// TaskContext is the per-task-thread state Brow mutates: which half of the
// cdef_line ring is "this sb row's pre-filter backup" versus "the previous
// sb row's". Brow flips it once per 8-pixel block row it sweeps (each by
// step of 2), see spec §4.8.
type TaskContext struct {
	TopPreCdefToggle int32
}

// FrameData aggregates the frame-level collaborators Brow reads: the
// published CDEF control masks, the shared line buffers, the kernel
// dispatch table, and the handful of header fields from Params.
type FrameData struct {
	Params Params
	Dsp    Dsp
	LF     *LineBuffers
	// Mask is indexed by sb128 column across the whole frame; Brow indexes
	// it starting at lflvlOffset.
	Mask []*BlockMaskSb128
	// SB128W is the number of 128-pixel-wide superblock columns across the
	// frame (f.sb128w in the original).
	SB128W int
}

// SB64W is the number of 64-pixel-wide superblock columns, two per sb128.
func (f *FrameData) SB64W() int { return f.SB128W << 1 }
