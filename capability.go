package logware

// Poll is the outcome of driving a Computation one step: either the
// final value is ready, or the caller must poll again later.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a completed Poll carrying the final value.
func Ready[T any](value T) Poll[T] {
	return Poll[T]{value: value, ready: true}
}

// NotReady returns the transient "poll again later" signal.
func NotReady[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether the value is available.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// Value returns the carried value. It is the zero value until IsReady
// reports true.
func (p Poll[T]) Value() T {
	return p.value
}

func (p Poll[T]) String() string {
	if !p.ready {
		return notReadyMarker
	}
	return renderValue(p.value)
}

// Computation is a unit of asynchronous work that eventually yields
// exactly one value or one error. Poll must be cheap and non-blocking;
// a not-ready result means the caller should poll again under whatever
// scheduling discipline drives it.
type Computation[T any] interface {
	Poll() (Poll[T], error)
}

// Service accepts requests and produces one Computation per accepted
// request. PollReady reports whether the service can take another
// request; callers are expected to poll it until it yields true before
// calling Call.
type Service[Req, Res any] interface {
	PollReady() (bool, error)
	Call(req Req) Computation[Res]
}

// ServiceFactory produces new Service instances, itself asynchronously:
// NewService yields a Computation that completes with the constructed
// service or with an initialization error.
type ServiceFactory[Req, Res any] interface {
	NewService() Computation[Service[Req, Res]]
}
