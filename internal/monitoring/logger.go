// Package monitoring holds the diagnostic logger shared by plotcheck's
// packages. Assertion results are never logged; only configuration
// loading, gradebook migrations and the example runner report here.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// and may be replaced by SetLogger to redirect or mute output.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Prefixed returns a logger that tags each line with prefix and forwards
// to whatever Logf is at call time.
func Prefixed(prefix string) func(format string, v ...interface{}) {
	return func(format string, v ...interface{}) {
		Logf(prefix+" "+format, v...)
	}
}
