package logware

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorsDefaultLevel(t *testing.T) {
	sink := installRecordingSink(t)

	boom := errors.New("boom")
	c := LogErrorsComputation[string](failWith(boom))

	_, err := c.Poll()
	require.ErrorIs(t, err, boom)

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, zerolog.ErrorLevel, records[0].Level)
}

func TestErrorComputationLogsAndForwardsError(t *testing.T) {
	sink := installRecordingSink(t)

	boom := errors.New("connection reset")
	c := LogErrorsComputation[string](failWith(boom))

	p, err := c.Poll()
	require.ErrorIs(t, err, boom)
	assert.False(t, p.IsReady())

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "computation poll: connection reset", records[0].Message)
	assert.Same(t, boom, records[0].Err)
}

func TestErrorComputationSilentOnSuccess(t *testing.T) {
	sink := installRecordingSink(t)

	c := LogErrorsComputation[string](succeedAfter(3, "done")).AtLevel(zerolog.InfoLevel)

	for {
		p, err := c.Poll()
		require.NoError(t, err)
		if p.IsReady() {
			assert.Equal(t, "done", p.Value())
			break
		}
	}

	assert.Equal(t, 0, sink.Len(), "successes must not be logged regardless of level")
}

func TestErrorServicePollReady(t *testing.T) {
	sink := installRecordingSink(t)

	// Error readiness is logged and re-signaled.
	failing := &stubService{readyErr: errors.New("overloaded")}
	svc := LogErrors[string, string](failing)

	_, err := svc.PollReady()
	require.Error(t, err)
	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "readiness check: overloaded", records[0].Message)

	// A clean readiness signal passes through unlogged.
	healthy := &stubService{ready: true}
	svc = LogErrors[string, string](healthy)

	ready, err := svc.PollReady()
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, 1, sink.Len())
}

func TestErrorServiceChildInheritsConfig(t *testing.T) {
	sink := installRecordingSink(t)

	boom := errors.New("late failure")
	inner := &stubService{
		ready:   true,
		produce: func(string) Computation[string] { return failWith(boom) },
	}

	svc := LogErrors[string, string](inner).
		AtLevel(zerolog.WarnLevel).
		WithTarget("t").
		AtLocation("f", 7)

	fut := svc.Call("req-1")
	_, err := fut.Poll()
	require.ErrorIs(t, err, boom)

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, zerolog.WarnLevel, records[0].Level)
	assert.Equal(t, "t", records[0].Target)
	assert.Equal(t, "f", records[0].File)
	assert.Equal(t, 7, records[0].Line)

	// The child wraps a different inner value but carries a copy of the
	// parent's options.
	child, ok := fut.(*ErrorComputation[string])
	require.True(t, ok)
	assert.Equal(t, svc.opts, child.opts)
}

func TestErrorServiceForwardsRequestUnchanged(t *testing.T) {
	installRecordingSink(t)

	inner := &stubService{
		ready:   true,
		produce: func(string) Computation[string] { return succeedAfter(0, "pong") },
	}
	svc := LogErrors[string, string](inner)

	p, err := svc.Call("ping").Poll()
	require.NoError(t, err)
	require.True(t, p.IsReady())
	assert.Equal(t, "pong", p.Value())
	assert.Equal(t, []string{"ping"}, inner.calls)
}

func TestErrorFactoryLogsConstructionError(t *testing.T) {
	sink := installRecordingSink(t)

	initErr := errors.New("listener bind failed")
	factory := LogErrorsFactory[string, string](&stubFactory{
		construct: func() Computation[Service[string, string]] {
			return &scripted[Service[string, string]]{
				steps: []scriptStep[Service[string, string]]{{err: initErr}},
			}
		},
	}).WithTarget("factory")

	_, err := factory.NewService().Poll()
	require.ErrorIs(t, err, initErr)

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "computation poll: listener bind failed", records[0].Message)
	assert.Equal(t, "factory", records[0].Target)
}

func TestErrorDecoratorTransparency(t *testing.T) {
	installRecordingSink(t)

	boom := errors.New("flaky")
	script := func() *scripted[string] {
		return &scripted[string]{steps: []scriptStep[string]{
			{poll: NotReady[string]()},
			{err: boom},
			{poll: NotReady[string]()},
			{poll: Ready("recovered")},
		}}
	}

	plain := script()
	decorated := LogErrorsComputation[string](script())

	for i := 0; i < 4; i++ {
		wantPoll, wantErr := plain.Poll()
		gotPoll, gotErr := decorated.Poll()
		assert.Equal(t, wantPoll, gotPoll, "poll %d", i)
		assert.Equal(t, wantErr, gotErr, "poll %d", i)
	}
}
