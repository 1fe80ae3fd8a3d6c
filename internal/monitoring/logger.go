package monitoring

import "log"

// Logf is the diagnostic logger used by the seeker core. It defaults to
// log.Printf; SetLogger can redirect it, and tests can mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
