package worker

import "errors"

// ErrWorkerNotFound is returned when no saved profile exists for the
// requested username.
var ErrWorkerNotFound = errors.New("worker not found")

// ProfileValidationError reports an invalid profile field; handlers map it
// to a bad-request response.
type ProfileValidationError struct {
	Reason string
}

func (e ProfileValidationError) Error() string {
	return e.Reason
}
