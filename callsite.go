package logware

import (
	"runtime"
	"strings"
)

// Location is a captured source position used for log attribution.
type Location struct {
	ModulePath string
	File       string
	Line       int
}

// Here captures the caller's package path and file/line. Threading the
// result through At (or InModule plus AtLocation) makes emitted records
// look as if they were logged at the capture site instead of inside
// this package.
func Here() Location {
	return caller(1)
}

// LogErrorsHere wraps inner like LogErrors and attributes its records
// to the call site.
func LogErrorsHere[Req, Res any](inner Service[Req, Res]) *ErrorService[Req, Res] {
	return LogErrors(inner).At(caller(1))
}

// LogResponsesHere wraps inner like LogResponses and attributes its
// records to the call site.
func LogResponsesHere[Req, Res any](inner Service[Req, Res]) *ResponseService[Req, Res] {
	return LogResponses(inner).At(caller(1))
}

func caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{ModulePath: selfModulePath}
	}
	return Location{
		ModulePath: packagePath(pc),
		File:       file,
		Line:       line,
	}
}

// packagePath derives the import path from the fully qualified function
// name, e.g. "github.com/acme/app/worker.(*Pool).run" -> "github.com/acme/app/worker".
func packagePath(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return selfModulePath
	}
	name := fn.Name()

	// Everything up to the last slash is part of the import path; the
	// package name ends at the first dot after it.
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}
