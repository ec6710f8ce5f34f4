//go:build av1debug

/*
DESCRIPTION
  linebuf_debug.go adds runtime disjointness checking to LineBufferStore
  writes when built with the av1debug tag, matching the teacher's
  convention of gating optional instrumentation behind a build tag (see
  filter/motion.go's "withcv" tag in the parent repository).

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import (
	"fmt"
	"sync"
)

type claimedRange struct {
	owner    string
	lo, hi   int // half-open [lo, hi)
}

var claims = struct {
	sync.Mutex
	byStore map[*LineBufferStore][]claimedRange
}{byStore: make(map[*LineBufferStore][]claimedRange)}

// claimRange panics if [offset, offset+n) overlaps a range already claimed
// by a different owner on the same store. Ranges claimed by the same owner
// are allowed to overlap (re-backing the same region is expected behavior,
// e.g. backup2lines runs once per sb row).
func claimRange(s *LineBufferStore, owner string, offset, n int) {
	claims.Lock()
	defer claims.Unlock()

	lo, hi := offset, offset+n
	ranges := claims.byStore[s]
	for _, r := range ranges {
		if r.owner == owner {
			continue
		}
		if lo < r.hi && r.lo < hi {
			panic(fmt.Sprintf("av1dec: disjointness violation: %q claims [%d,%d) overlapping %q's [%d,%d)",
				owner, lo, hi, r.owner, r.lo, r.hi))
		}
	}
	claims.byStore[s] = append(ranges, claimedRange{owner: owner, lo: lo, hi: hi})
}
