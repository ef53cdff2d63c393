package mapper

import "fmt"

// ConfigurationError reports a schema authoring defect: a rule with several keys and
// no handler to combine them.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return "handler is required for multiple keys"
}

// ValidationError reports a required single-key value missing from the source.
// Path is the key path exactly as written in the rule.
type ValidationError struct {
	Field string
	Path  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s is required and missing", e.Path)
}
