// Package common contains shared data available for all integration components.
package common

// ILoggerProvider defines logger provider which will be passed to every component.
// Fields are key/value pairs, see Log*Token constants for the known keys.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
	Flush()
}

// Unsubscribe removes previously registered listener.
type Unsubscribe func()

// ISecretProvider defines secrets store used by the config templates.
type ISecretProvider interface {
	Get(string) (string, error)
}
