package logware

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHereCapturesCallSite(t *testing.T) {
	loc := Here()

	assert.Equal(t, selfModulePath, loc.ModulePath)
	assert.True(t, strings.HasSuffix(loc.File, "callsite_test.go"), "file %q", loc.File)
	assert.Positive(t, loc.Line)
}

func TestLogErrorsHereAttributesToCallSite(t *testing.T) {
	sink := installRecordingSink(t)

	inner := &stubService{
		ready:   true,
		produce: func(string) Computation[string] { return failWith(errors.New("x")) },
	}

	svc := LogErrorsHere[string, string](inner)
	_, err := svc.Call("req").Poll()
	require.Error(t, err)

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, selfModulePath, records[0].ModulePath)
	// Target falls back to the captured module path.
	assert.Equal(t, selfModulePath, records[0].Target)
	assert.True(t, strings.HasSuffix(records[0].File, "callsite_test.go"), "file %q", records[0].File)
	assert.Positive(t, records[0].Line)
}

func TestLogResponsesHereAttributesToCallSite(t *testing.T) {
	sink := installRecordingSink(t)

	inner := &stubService{
		ready:   true,
		produce: func(string) Computation[string] { return succeedAfter(0, "ok") },
	}

	svc := LogResponsesHere[string, string](inner)
	p, err := svc.Call("req").Poll()
	require.NoError(t, err)
	require.True(t, p.IsReady())

	records := sink.Records()
	require.Len(t, records, 1)
	assert.Equal(t, selfModulePath, records[0].ModulePath)
	assert.True(t, strings.HasSuffix(records[0].File, "callsite_test.go"), "file %q", records[0].File)
}

func TestPackagePathHandlesMethods(t *testing.T) {
	// Here() called through a method value still resolves this package.
	var loc Location
	func() {
		loc = Here()
	}()
	assert.Equal(t, selfModulePath, loc.ModulePath)
}
