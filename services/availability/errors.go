package availability

import "errors"

// InvalidInputError reports a request the engine refuses to compute on:
// a non-positive duration or a time string that does not parse as "HH:MM".
// Inputs are never silently corrected.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// InvalidConfigurationError reports a business with no working-hours record at
// all. It is distinct from a configured-but-closed day, which yields an empty
// slot list with no error.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsInvalidConfiguration reports whether err is an InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var target *InvalidConfigurationError
	return errors.As(err, &target)
}
