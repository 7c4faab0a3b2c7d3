package datadog

import (
	"errors"
	"fmt"
	"strings"

	rq "github.com/carlmjohnson/requests"
)

// APIError is a non-2xx response from the Datadog API. StatusCode comes
// from the transport, Errors from the decoded {"errors":[...]} body.
type APIError struct {
	StatusCode int      `json:"-"`
	Errors     []string `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("datadog api error (status %d): %s", e.StatusCode, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("datadog api error (status %d)", e.StatusCode)
}

// wrapErr promotes a requests validator failure into the APIError that
// ErrorJSON populated from the response body. Transport errors pass
// through untouched.
func wrapErr(err error, e *APIError) error {
	if err == nil {
		return nil
	}
	var re *rq.ResponseError
	if errors.As(err, &re) {
		e.StatusCode = re.StatusCode
		return e
	}
	return err
}
