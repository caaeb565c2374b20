package logware

import (
	"runtime"

	"github.com/rs/zerolog"
)

// options holds the shared decorator configuration. The attribution
// fields are nil until set through the fluent setters; nil means "fall
// back to this package's own identity" when a record is built.
//
// Decorators copy the struct by value when they spawn a child, so a
// parent and its children never share mutable state.
type options struct {
	level       zerolog.Level
	target      *string
	modulePath  *string
	file        *string
	line        *int
	logNotReady bool
}

func errorDefaults() options {
	return options{level: zerolog.ErrorLevel}
}

func responseDefaults() options {
	return options{level: zerolog.DebugLevel}
}

func (o *options) setTarget(target string) {
	o.target = &target
}

func (o *options) setModule(modulePath string) {
	o.modulePath = &modulePath
}

func (o *options) setLocation(file string, line int) {
	o.file = &file
	o.line = &line
}

func (o *options) setCallSite(loc Location) {
	o.setModule(loc.ModulePath)
	o.setLocation(loc.File, loc.Line)
}

// record builds the log record for one observed outcome. The fallback
// precedence is deliberately asymmetric: an unset target falls back to
// the module path and an unset module path falls back to the target,
// each before the package-identity default, so that configuring either
// field populates both.
func (o options) record(context, rendered string, cause error) Record {
	rec := Record{
		Level:   o.level,
		Message: context + ": " + rendered,
		Err:     cause,
	}

	switch {
	case o.target != nil:
		rec.Target = *o.target
	case o.modulePath != nil:
		rec.Target = *o.modulePath
	default:
		rec.Target = selfModulePath
	}

	switch {
	case o.modulePath != nil:
		rec.ModulePath = *o.modulePath
	case o.target != nil:
		rec.ModulePath = *o.target
	default:
		rec.ModulePath = selfModulePath
	}

	if o.file != nil {
		rec.File = *o.file
		rec.Line = *o.line
	} else {
		// Attribute to the emit site inside this package, the same
		// way an unconfigured logging call would be attributed.
		if _, file, line, ok := runtime.Caller(2); ok {
			rec.File = file
			rec.Line = line
		}
	}

	return rec
}

// emit hands one record to the active sink. Emission is a single
// synchronous call with no buffering; the sink's thread safety is the
// sink's concern.
func (o options) emit(context, rendered string, cause error) {
	ActiveSink().Log(o.record(context, rendered, cause))
}
