package pokeapi

import (
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	ErrorNetwork ErrorKind = "network"
	ErrorStatus  ErrorKind = "status"
	ErrorEmpty   ErrorKind = "empty"
	ErrorDecode  ErrorKind = "decode"
)

// FetchError is the only error Fetch returns. Its message is meant to be shown
// to the user as is.
type FetchError struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case ErrorStatus:
		return fmt.Sprintf("Request failed with status code %d (%s)", e.Status, http.StatusText(e.Status))
	case ErrorEmpty:
		return "Failed to fetch data"
	case ErrorDecode:
		return fmt.Sprintf("Malformed response: %v", e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("Network error: %v", e.Err)
		}
		return "Network error"
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
