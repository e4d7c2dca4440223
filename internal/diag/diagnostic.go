package diag

import "github.com/uysalibov/ibORB/internal/source"

// Diagnostic is a single reported condition: what, where, how severe.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Location source.Location
	Message  string
}

// IsWarning reports whether d should never be treated as fatal by a caller
// deciding whether to proceed past parsing to emission.
func (d Diagnostic) IsWarning() bool {
	return d.Severity == SevWarning
}

func New(code Code, sev Severity, loc source.Location, msg string) Diagnostic {
	return Diagnostic{Code: code, Severity: sev, Location: loc, Message: msg}
}

func NewError(code Code, loc source.Location, msg string) Diagnostic {
	return New(code, SevError, loc, msg)
}

func NewWarning(code Code, loc source.Location, msg string) Diagnostic {
	return New(code, SevWarning, loc, msg)
}
