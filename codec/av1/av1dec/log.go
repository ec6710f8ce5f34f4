/*
DESCRIPTION
  log.go wires the package into the organization's shared logging
  interface, following the same package-level var pattern used by
  codec/jpeg/lex.go in the parent repository. Log is nil by default; callers
  that want CDEF tracing set it once at startup the way cmd/rv/main.go wires
  up logging for the rest of the decoder. Brow logs sb-row entry/exit and
  strength-decode skip paths at Debug, source.go's FIXME-flagged
  resize/bottom branches at Debug so a corrupted frame can be correlated
  with which branch fired, and a Warning if uvIdx ever falls outside the Dsp
  FB table.

AUTHORS
  The Australian Ocean Laboratory (AusOcean)
*/

package av1dec

import "github.com/ausocean/utils/logging"

// Log is the package-wide logger. It is nil until a caller assigns one; all
// logging in this package goes through logDebug/logWarning so that a nil
// Log is a safe no-op rather than a required setup step.
var Log logging.Logger

func logDebug(msg string, args ...interface{}) {
	if Log == nil {
		return
	}
	Log.Debug(msg, args...)
}

func logWarning(msg string, args ...interface{}) {
	if Log == nil {
		return
	}
	Log.Warning(msg, args...)
}
