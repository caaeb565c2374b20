package logware

import (
	"sync"
	"testing"
)

// recordingSink captures every record for assertions.
type recordingSink struct {
	mu      sync.Mutex
	records []Record
}

func (s *recordingSink) Log(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

func (s *recordingSink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *recordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// installRecordingSink swaps the process-wide sink for a recording one
// and restores the previous sink when the test ends.
func installRecordingSink(t *testing.T) *recordingSink {
	t.Helper()
	prev := ActiveSink()
	sink := &recordingSink{}
	SetSink(sink)
	t.Cleanup(func() { SetSink(prev) })
	return sink
}

// scriptStep is one scripted poll outcome.
type scriptStep[T any] struct {
	poll Poll[T]
	err  error
}

// scripted replays a fixed sequence of poll outcomes; the final step
// repeats once the script is exhausted.
type scripted[T any] struct {
	steps []scriptStep[T]
	polls int
}

func (c *scripted[T]) Poll() (Poll[T], error) {
	i := c.polls
	if i >= len(c.steps) {
		i = len(c.steps) - 1
	}
	c.polls++
	step := c.steps[i]
	return step.poll, step.err
}

func succeedAfter(notReady int, value string) *scripted[string] {
	var steps []scriptStep[string]
	for i := 0; i < notReady; i++ {
		steps = append(steps, scriptStep[string]{poll: NotReady[string]()})
	}
	steps = append(steps, scriptStep[string]{poll: Ready(value)})
	return &scripted[string]{steps: steps}
}

func failWith(err error) *scripted[string] {
	return &scripted[string]{steps: []scriptStep[string]{{poll: NotReady[string](), err: err}}}
}

// stubService produces one scripted computation per request.
type stubService struct {
	ready    bool
	readyErr error
	produce  func(req string) Computation[string]
	calls    []string
}

func (s *stubService) PollReady() (bool, error) {
	return s.ready, s.readyErr
}

func (s *stubService) Call(req string) Computation[string] {
	s.calls = append(s.calls, req)
	return s.produce(req)
}

// stubFactory constructs services through a scripted computation.
type stubFactory struct {
	construct func() Computation[Service[string, string]]
}

func (f *stubFactory) NewService() Computation[Service[string, string]] {
	return f.construct()
}
