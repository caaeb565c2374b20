// Package logware provides transparent logging decorators for
// poll-driven services.
//
// A decorator wraps a Computation, Service, or ServiceFactory and
// implements the same shape itself: every poll, readiness check, or
// request is forwarded to the wrapped value unchanged, and the outcome
// is emitted as a structured log record on the way back out. The
// wrapped value never observes a difference.
//
// Key features
//   - LogErrors family: emits a record for every error outcome and
//     forwards the error unchanged; successes stay silent
//   - LogResponses family: emits a record for every ready outcome,
//     optionally for not-ready polls, and never touches errors
//   - Services spawn child decorators per request, so the outcome of
//     each in-flight computation is logged with the parent's settings
//   - Call-site attribution: Here() and the *Here constructors make
//     records appear to originate where the decorator was built
//   - Records flow through a process-wide Sink; ZerologSink provides a
//     rs/zerolog backend with console and rotating-file channels
//
// Typical usage
//
//	svc := logware.LogErrorsHere(inner).AtLevel(zerolog.WarnLevel)
//	fut := svc.Call(req)
//	for {
//		p, err := fut.Poll()
//		...
//	}
package logware
