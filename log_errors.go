package logware

import (
	"github.com/rs/zerolog"
)

// ErrorService decorates a Service so that every error outcome is
// logged before being returned. Successes and readiness signals pass
// through untouched and unlogged; the error itself is forwarded exactly
// as received — logging is a pure side effect.
type ErrorService[Req, Res any] struct {
	inner Service[Req, Res]
	opts  options
}

// LogErrors wraps the given Service in error logging. Records default
// to zerolog.ErrorLevel and are attributed to this package unless the
// fluent setters (or LogErrorsHere) say otherwise.
func LogErrors[Req, Res any](inner Service[Req, Res]) *ErrorService[Req, Res] {
	return &ErrorService[Req, Res]{inner: inner, opts: errorDefaults()}
}

// AtLevel sets the level of the produced records.
func (s *ErrorService[Req, Res]) AtLevel(level zerolog.Level) *ErrorService[Req, Res] {
	s.opts.level = level
	return s
}

// WithTarget sets the target of the produced records.
func (s *ErrorService[Req, Res]) WithTarget(target string) *ErrorService[Req, Res] {
	s.opts.setTarget(target)
	return s
}

// InModule sets the module path of the produced records.
func (s *ErrorService[Req, Res]) InModule(modulePath string) *ErrorService[Req, Res] {
	s.opts.setModule(modulePath)
	return s
}

// AtLocation sets the file and line of the produced records.
func (s *ErrorService[Req, Res]) AtLocation(file string, line int) *ErrorService[Req, Res] {
	s.opts.setLocation(file, line)
	return s
}

// At applies a captured call-site location, see Here.
func (s *ErrorService[Req, Res]) At(loc Location) *ErrorService[Req, Res] {
	s.opts.setCallSite(loc)
	return s
}

// PollReady forwards the readiness check and logs any error it yields.
func (s *ErrorService[Req, Res]) PollReady() (bool, error) {
	ready, err := s.inner.PollReady()
	if err != nil {
		s.opts.emit(ctxReadinessCheck, err.Error(), err)
	}
	return ready, err
}

// Call forwards the request and wraps the produced computation in a
// child decorator carrying the same configuration, so the eventual
// outcome of this request is logged too.
func (s *ErrorService[Req, Res]) Call(req Req) Computation[Res] {
	return &ErrorComputation[Res]{inner: s.inner.Call(req), opts: s.opts}
}

// ErrorComputation decorates a Computation so that an error outcome is
// logged before being returned.
type ErrorComputation[T any] struct {
	inner Computation[T]
	opts  options
}

// LogErrorsComputation wraps the given Computation in error logging.
func LogErrorsComputation[T any](inner Computation[T]) *ErrorComputation[T] {
	return &ErrorComputation[T]{inner: inner, opts: errorDefaults()}
}

// AtLevel sets the level of the produced records.
func (c *ErrorComputation[T]) AtLevel(level zerolog.Level) *ErrorComputation[T] {
	c.opts.level = level
	return c
}

// WithTarget sets the target of the produced records.
func (c *ErrorComputation[T]) WithTarget(target string) *ErrorComputation[T] {
	c.opts.setTarget(target)
	return c
}

// InModule sets the module path of the produced records.
func (c *ErrorComputation[T]) InModule(modulePath string) *ErrorComputation[T] {
	c.opts.setModule(modulePath)
	return c
}

// AtLocation sets the file and line of the produced records.
func (c *ErrorComputation[T]) AtLocation(file string, line int) *ErrorComputation[T] {
	c.opts.setLocation(file, line)
	return c
}

// At applies a captured call-site location, see Here.
func (c *ErrorComputation[T]) At(loc Location) *ErrorComputation[T] {
	c.opts.setCallSite(loc)
	return c
}

// Poll forwards to the inner computation and logs an error outcome.
func (c *ErrorComputation[T]) Poll() (Poll[T], error) {
	p, err := c.inner.Poll()
	if err != nil {
		c.opts.emit(ctxComputationPoll, err.Error(), err)
	}
	return p, err
}

// ErrorFactory decorates a ServiceFactory so that construction errors
// are logged. The construction computation is wrapped in a child
// ErrorComputation with the factory's configuration.
type ErrorFactory[Req, Res any] struct {
	inner ServiceFactory[Req, Res]
	opts  options
}

// LogErrorsFactory wraps the given ServiceFactory in error logging.
func LogErrorsFactory[Req, Res any](inner ServiceFactory[Req, Res]) *ErrorFactory[Req, Res] {
	return &ErrorFactory[Req, Res]{inner: inner, opts: errorDefaults()}
}

// AtLevel sets the level of the produced records.
func (f *ErrorFactory[Req, Res]) AtLevel(level zerolog.Level) *ErrorFactory[Req, Res] {
	f.opts.level = level
	return f
}

// WithTarget sets the target of the produced records.
func (f *ErrorFactory[Req, Res]) WithTarget(target string) *ErrorFactory[Req, Res] {
	f.opts.setTarget(target)
	return f
}

// InModule sets the module path of the produced records.
func (f *ErrorFactory[Req, Res]) InModule(modulePath string) *ErrorFactory[Req, Res] {
	f.opts.setModule(modulePath)
	return f
}

// AtLocation sets the file and line of the produced records.
func (f *ErrorFactory[Req, Res]) AtLocation(file string, line int) *ErrorFactory[Req, Res] {
	f.opts.setLocation(file, line)
	return f
}

// At applies a captured call-site location, see Here.
func (f *ErrorFactory[Req, Res]) At(loc Location) *ErrorFactory[Req, Res] {
	f.opts.setCallSite(loc)
	return f
}

// NewService forwards construction and wraps the resulting computation
// in a child decorator, so initialization failures are logged.
func (f *ErrorFactory[Req, Res]) NewService() Computation[Service[Req, Res]] {
	return &ErrorComputation[Service[Req, Res]]{inner: f.inner.NewService(), opts: f.opts}
}
