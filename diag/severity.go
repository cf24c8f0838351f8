package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevMessage is for informational diagnostics.
	SevMessage Severity = iota
	// SevSuggestion is for hints rendered as faded code by editors.
	SevSuggestion
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevMessage:
		return "message"
	case SevSuggestion:
		return "suggestion"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
