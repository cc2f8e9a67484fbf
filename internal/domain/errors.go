package domain

import "github.com/pkg/errors"

// ErrValidation is the single error kind raised for catalog data validation
// failures: update/delete on an unpersisted product, missing keys or wrong
// types during Deserialize, and unrecognized category values.
var ErrValidation = errors.New("data validation error")

// ValidationErrorf wraps ErrValidation with a formatted reason. Callers match
// the kind with errors.Is(err, ErrValidation).
func ValidationErrorf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrValidation, format, args...)
}
