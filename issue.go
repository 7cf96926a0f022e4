package fundsplit

import "fmt"

// Severity ranks a validation issue.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// ValidationError reports one accounting inconsistency found in the outputs.
// It is a value, not an error: outputs with issues are still usable.
type ValidationError struct {
	Type     Severity `json:"type"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Expected *Money   `json:"expected,omitempty"`
	Actual   *Money   `json:"actual,omitempty"`
}

func (v ValidationError) String() string {
	if v.Expected != nil && v.Actual != nil {
		return fmt.Sprintf("%s: %s: %s (expected %s, got %s)", v.Type, v.Field, v.Message, v.Expected, v.Actual)
	}
	return fmt.Sprintf("%s: %s: %s", v.Type, v.Field, v.Message)
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []ValidationError) bool {
	for _, v := range issues {
		if v.Type == Error {
			return true
		}
	}
	return false
}
