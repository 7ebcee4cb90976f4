package generator

import "fmt"

// Severity represents diagnostic severity
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic represents a host supplied diagnostic, relayed unchanged
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Location string // file:line when known
}

// String returns diagnostic description
func (d Diagnostic) String() string {
	if d.Location == "" {
		return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s %s: %s", d.Location, d.Severity, d.Code, d.Message)
}
