package transport

import "net/http"

// HTTPDoer executes HTTP requests. *http.Client satisfies it; tests and
// callers with custom middleware inject their own.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=transport
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger defines the logging operations used by the transport.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}
