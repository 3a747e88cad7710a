package services

import "fmt"

// ValidationError marks a request that failed a boundary check. Field
// names the offending input so the UI can attach the message to it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
