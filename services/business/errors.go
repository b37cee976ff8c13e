package business

import "errors"

var (
	// ErrBusinessNotFound is returned when the requested business does not exist.
	ErrBusinessNotFound = errors.New("business not found")

	// ErrOwnerHasBusiness is returned when an owner tries to register a second business.
	ErrOwnerHasBusiness = errors.New("owner already has a registered business")

	// ErrServiceNotFound is returned when a catalogue entry does not exist.
	ErrServiceNotFound = errors.New("service not found")
)

// ValidationError reports a rejected working-hours or catalogue payload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
