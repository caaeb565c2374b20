package logware

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Record is one observed outcome, ready for a sink. Target, ModulePath,
// File and Line are always populated (falling back to the decorator's
// own identity); Err is only set by the error-logging family and may be
// used by sinks for enrichment.
type Record struct {
	Level      zerolog.Level
	Target     string
	ModulePath string
	File       string
	Line       int
	Message    string
	Err        error
}

// Sink receives records from the decorators. Log must be non-blocking
// and safe to call from whatever goroutine drives the wrapped
// computation; the decorators add no locking of their own.
type Sink interface {
	Log(rec Record)
}

// NopSink discards every record. It is the active sink until SetSink
// is called.
type NopSink struct{}

func (NopSink) Log(Record) {}

var activeSink atomic.Pointer[Sink]

// SetSink installs the process-wide sink. Passing nil restores the
// discarding sink. The swap is atomic and takes effect for the next
// emission; decorators built earlier pick it up too.
func SetSink(s Sink) {
	if s == nil {
		s = NopSink{}
	}
	activeSink.Store(&s)
}

// ActiveSink returns the current process-wide sink.
func ActiveSink() Sink {
	if p := activeSink.Load(); p != nil {
		return *p
	}
	return NopSink{}
}
