package diag

import (
	"fmt"
)

// Diagnostic is an error, warning or hint reported against a source file
type Diagnostic struct {
	File string
	// Start is the byte offset of the reported range, negative when the diagnostic has no location
	Start    int
	Length   int
	Code     Code
	Severity Severity
	Message  Message
}

// New creates a located diagnostic
func New(file string, start, length int, code Code, severity Severity, text string) Diagnostic {
	return Diagnostic{
		File:     file,
		Start:    start,
		Length:   length,
		Code:     code,
		Severity: severity,
		Message:  NewMessage(text),
	}
}

// HasLocation reports whether the diagnostic points into a file
func (d Diagnostic) HasLocation() bool {
	return d.Start >= 0
}

// End returns the end offset of the reported range
func (d Diagnostic) End() int {
	return d.Start + d.Length
}

func (d Diagnostic) String() string {
	if !d.HasLocation() {
		return fmt.Sprintf("%v %v: %v", d.Severity, d.Code, d.Message.Flatten())
	}
	return fmt.Sprintf("%v:%d %v %v: %v", d.File, d.Start, d.Severity, d.Code, d.Message.Flatten())
}

// HasErrors reports whether any diagnostic is an error
func HasErrors(diagnostics []Diagnostic) bool {
	for i := range diagnostics {
		if diagnostics[i].Severity >= SevError {
			return true
		}
	}
	return false
}
