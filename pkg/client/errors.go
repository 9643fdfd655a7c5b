package client

import (
	"fmt"
)

// TransportError is returned by Send when the request could not be
// delivered or the server answered with a non-2xx status.
type TransportError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: status %d: %v", e.Operation, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
