package logware

import (
	"github.com/rs/zerolog"
)

// ResponseService decorates a Service so that ready outcomes (and,
// optionally, not-ready polls) are logged before being returned. Errors
// are not intercepted at all: they propagate unlogged and untouched.
type ResponseService[Req, Res any] struct {
	inner Service[Req, Res]
	opts  options
}

// LogResponses wraps the given Service in response logging. Records
// default to zerolog.DebugLevel; not-ready polls are not logged unless
// LogNotReady(true) is set, which keeps a frequently polled computation
// from flooding the sink.
func LogResponses[Req, Res any](inner Service[Req, Res]) *ResponseService[Req, Res] {
	return &ResponseService[Req, Res]{inner: inner, opts: responseDefaults()}
}

// AtLevel sets the level of the produced records.
func (s *ResponseService[Req, Res]) AtLevel(level zerolog.Level) *ResponseService[Req, Res] {
	s.opts.level = level
	return s
}

// WithTarget sets the target of the produced records.
func (s *ResponseService[Req, Res]) WithTarget(target string) *ResponseService[Req, Res] {
	s.opts.setTarget(target)
	return s
}

// InModule sets the module path of the produced records.
func (s *ResponseService[Req, Res]) InModule(modulePath string) *ResponseService[Req, Res] {
	s.opts.setModule(modulePath)
	return s
}

// AtLocation sets the file and line of the produced records.
func (s *ResponseService[Req, Res]) AtLocation(file string, line int) *ResponseService[Req, Res] {
	s.opts.setLocation(file, line)
	return s
}

// At applies a captured call-site location, see Here.
func (s *ResponseService[Req, Res]) At(loc Location) *ResponseService[Req, Res] {
	s.opts.setCallSite(loc)
	return s
}

// LogNotReady sets whether not-ready polls are logged.
func (s *ResponseService[Req, Res]) LogNotReady(log bool) *ResponseService[Req, Res] {
	s.opts.logNotReady = log
	return s
}

// PollReady forwards the readiness check and logs the signal according
// to the not-ready policy. Errors pass through unlogged.
func (s *ResponseService[Req, Res]) PollReady() (bool, error) {
	ready, err := s.inner.PollReady()
	if err != nil {
		return ready, err
	}
	if ready {
		s.opts.emit(ctxReadinessCheck, readyMarker, nil)
	} else if s.opts.logNotReady {
		s.opts.emit(ctxReadinessCheck, notReadyMarker, nil)
	}
	return ready, nil
}

// Call forwards the request and wraps the produced computation in a
// child decorator carrying the same configuration.
func (s *ResponseService[Req, Res]) Call(req Req) Computation[Res] {
	return &ResponseComputation[Res]{inner: s.inner.Call(req), opts: s.opts}
}

// ResponseComputation decorates a Computation so that its ready outcome
// is logged before being returned.
type ResponseComputation[T any] struct {
	inner Computation[T]
	opts  options
}

// LogResponsesComputation wraps the given Computation in response
// logging.
func LogResponsesComputation[T any](inner Computation[T]) *ResponseComputation[T] {
	return &ResponseComputation[T]{inner: inner, opts: responseDefaults()}
}

// AtLevel sets the level of the produced records.
func (c *ResponseComputation[T]) AtLevel(level zerolog.Level) *ResponseComputation[T] {
	c.opts.level = level
	return c
}

// WithTarget sets the target of the produced records.
func (c *ResponseComputation[T]) WithTarget(target string) *ResponseComputation[T] {
	c.opts.setTarget(target)
	return c
}

// InModule sets the module path of the produced records.
func (c *ResponseComputation[T]) InModule(modulePath string) *ResponseComputation[T] {
	c.opts.setModule(modulePath)
	return c
}

// AtLocation sets the file and line of the produced records.
func (c *ResponseComputation[T]) AtLocation(file string, line int) *ResponseComputation[T] {
	c.opts.setLocation(file, line)
	return c
}

// At applies a captured call-site location, see Here.
func (c *ResponseComputation[T]) At(loc Location) *ResponseComputation[T] {
	c.opts.setCallSite(loc)
	return c
}

// LogNotReady sets whether not-ready polls are logged.
func (c *ResponseComputation[T]) LogNotReady(log bool) *ResponseComputation[T] {
	c.opts.logNotReady = log
	return c
}

// Poll forwards to the inner computation and logs the outcome according
// to the ready/not-ready policy. Errors pass through unlogged.
func (c *ResponseComputation[T]) Poll() (Poll[T], error) {
	p, err := c.inner.Poll()
	if err != nil {
		return p, err
	}
	logPoll(c.opts, p, ctxComputationPoll)
	return p, nil
}

// logPoll applies the response-logging policy to one poll outcome: a
// ready value is always logged, a not-ready signal only when the
// decorator opted in.
func logPoll[T any](o options, p Poll[T], context string) {
	if p.IsReady() {
		o.emit(context, renderValue(p.Value()), nil)
	} else if o.logNotReady {
		o.emit(context, notReadyMarker, nil)
	}
}

// ResponseFactory decorates a ServiceFactory so that the constructed
// service is logged once construction completes.
type ResponseFactory[Req, Res any] struct {
	inner ServiceFactory[Req, Res]
	opts  options
}

// LogResponsesFactory wraps the given ServiceFactory in response
// logging.
func LogResponsesFactory[Req, Res any](inner ServiceFactory[Req, Res]) *ResponseFactory[Req, Res] {
	return &ResponseFactory[Req, Res]{inner: inner, opts: responseDefaults()}
}

// AtLevel sets the level of the produced records.
func (f *ResponseFactory[Req, Res]) AtLevel(level zerolog.Level) *ResponseFactory[Req, Res] {
	f.opts.level = level
	return f
}

// WithTarget sets the target of the produced records.
func (f *ResponseFactory[Req, Res]) WithTarget(target string) *ResponseFactory[Req, Res] {
	f.opts.setTarget(target)
	return f
}

// InModule sets the module path of the produced records.
func (f *ResponseFactory[Req, Res]) InModule(modulePath string) *ResponseFactory[Req, Res] {
	f.opts.setModule(modulePath)
	return f
}

// AtLocation sets the file and line of the produced records.
func (f *ResponseFactory[Req, Res]) AtLocation(file string, line int) *ResponseFactory[Req, Res] {
	f.opts.setLocation(file, line)
	return f
}

// At applies a captured call-site location, see Here.
func (f *ResponseFactory[Req, Res]) At(loc Location) *ResponseFactory[Req, Res] {
	f.opts.setCallSite(loc)
	return f
}

// LogNotReady sets whether not-ready polls are logged.
func (f *ResponseFactory[Req, Res]) LogNotReady(log bool) *ResponseFactory[Req, Res] {
	f.opts.logNotReady = log
	return f
}

// NewService forwards construction and wraps the resulting computation
// in a child decorator.
func (f *ResponseFactory[Req, Res]) NewService() Computation[Service[Req, Res]] {
	return &ResponseComputation[Service[Req, Res]]{inner: f.inner.NewService(), opts: f.opts}
}
