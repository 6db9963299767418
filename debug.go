package websearch

import "github.com/rs/zerolog/log"

// Sink receives diagnostic events from Search. Emission is a side
// effect only; it never alters control flow and never fails a call.
type Sink interface {
	Emit(label, detail string)
}

// DebugOptions gates diagnostic emission. When Enabled is false no
// diagnostics are produced regardless of the other flags. A nil Sink
// routes events to zerolog at debug level.
type DebugOptions struct {
	Enabled      bool
	LogRequests  bool
	LogResponses bool
	Sink         Sink
}

func (d DebugOptions) emit(label, detail string) {
	if !d.Enabled {
		return
	}
	if d.Sink != nil {
		d.Sink.Emit(label, detail)
		return
	}
	log.Debug().Str("detail", detail).Msg(label)
}
