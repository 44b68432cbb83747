package classreader

import "fmt"

// MalformedClassError reports a class whose parser events were internally
// inconsistent: a duplicate method key, a member visited before the header,
// or similar structural violations.
type MalformedClassError struct {
	ClassName string
	Reason    string
}

func (e *MalformedClassError) Error() string {
	name := e.ClassName
	if name == "" {
		name = "<unknown>"
	}
	return fmt.Sprintf("malformed class %q: %s", name, e.Reason)
}

// NewMalformedClassError builds a MalformedClassError with a formatted reason.
func NewMalformedClassError(className, format string, args ...any) *MalformedClassError {
	return &MalformedClassError{ClassName: className, Reason: fmt.Sprintf(format, args...)}
}
