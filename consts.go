package logware

const (
	// selfModulePath is the attribution fallback when neither a target
	// nor a module path was configured on a decorator.
	selfModulePath = "github.com/Station-Manager/logware"

	notReadyMarker = "not ready"
	readyMarker    = "ready"

	ctxComputationPoll = "computation poll"
	ctxReadinessCheck  = "readiness check"

	emptyString = ""
)

const (
	errMsgNilConfig     = "Sink config is nil."
	errMsgConfigInvalid = "Sink configuration is invalid."
	errMsgNoChannels    = "No logging channels enabled."
)
