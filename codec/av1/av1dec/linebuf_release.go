//go:build !av1debug

/*
DESCRIPTION
  linebuf_release.go is the default, zero-overhead build: disjointness
  between concurrent sb-row invocations is a caller-enforced invariant (see
  §5), not a runtime check, unless built with -tags av1debug.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

func claimRange(s *LineBufferStore, owner string, offset, n int) {}
