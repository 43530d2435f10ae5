package client

import (
	"fmt"
	"time"
)

var errBodyTooLarge = fmt.Errorf("response body exceeds %d byte limit", maxBodyBytes)

// FetchError reports a failed backend read: a non-2xx status, a transport failure
// or an undecodable body. Status is 0 when no response was received.
type FetchError struct {
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("failed to fetch %s: %d: %v", e.Path, e.Status, e.Err)
	case e.Status != 0:
		if e.Message == "" {
			return fmt.Sprintf("failed to fetch %s: %d", e.Path, e.Status)
		}
		return fmt.Sprintf("failed to fetch %s: %d %s", e.Path, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("failed to fetch %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to fetch %s", e.Path)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// TimeoutError reports a backend read that did not complete within the configured timeout.
type TimeoutError struct {
	Path  string
	After time.Duration
	Err   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %s", e.Path, e.After)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
