package transport

import "errors"

// IsServerError reports whether err comes from a Response that got an HTTP
// answer: a non-2xx status or a 2xx body that could not be decoded.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.StatusCode != 0
}

// IsTransportFailure reports whether err comes from a Response that never
// received an HTTP answer: connection errors, timeouts and cancellation.
func IsTransportFailure(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.StatusCode == 0
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
