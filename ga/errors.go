package ga

import "fmt"

// ConfigurationError reports simulation parameters that cannot be run.
// It is returned before any random state is consumed.
type ConfigurationError struct {
	Field  string // ini key of the offending parameter
	Value  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config error: %s %s (got %d)", e.Field, e.Reason, e.Value)
}
