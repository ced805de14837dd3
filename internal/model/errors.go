package model

import (
	"errors"
	"fmt"
)

// ErrValidation marks a rejected mutation: the input was malformed and the
// store left its state untouched. Callers match it with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError carries the offending field alongside ErrValidation.
func ValidationError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}
