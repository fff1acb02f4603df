package session

import "fmt"

// ValidationError signals incomplete user intent (e.g. manual deletion with
// no dates selected). Callers recover locally; it is never fatal.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}
