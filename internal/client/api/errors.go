package api

import "fmt"

// StatusError is returned for 4xx responses that are neither authorization
// rejections nor availability problems, e.g. validation failures. It keeps
// the server's message so the caller can show it verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Code)
}
