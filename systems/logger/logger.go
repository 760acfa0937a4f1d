// Package logger provides logrus-backed implementation of the integration logger.
package logger

import (
	"io"
	"strings"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/sirupsen/logrus"
)

// Logger provider implementation.
type provider struct {
	logger *logrus.Logger
}

// ConstructLogger has data required for a new logger.
type ConstructLogger struct {
	Level  string
	Output io.Writer
	JSON   bool
}

// NewLoggerProvider constructs a new system logger.
func NewLoggerProvider(ctor *ConstructLogger) common.ILoggerProvider {
	l := logrus.New()
	l.SetLevel(getLogLevel(ctor.Level))
	if nil != ctor.Output {
		l.SetOutput(ctor.Output)
	}

	if ctor.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &provider{
		logger: l,
	}
}

// Debug prints debug level message.
func (p *provider) Debug(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Debug(msg)
}

// Info prints info level message.
func (p *provider) Info(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Info(msg)
}

// Warn prints warning level message.
func (p *provider) Warn(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Warn(msg)
}

// Error prints error level message.
func (p *provider) Error(msg string, err error, fields ...string) {
	p.logger.WithFields(withFields(fields...)).WithError(err).Error(msg)
}

// Fatal prints fatal level message and exits.
func (p *provider) Fatal(msg string, err error, fields ...string) {
	p.logger.WithFields(withFields(fields...)).WithError(err).Fatal(msg)
}

// Flush isn't needed for logrus, all writes are synchronous.
func (p *provider) Flush() {
}

// Helper method to add generic fields to the output.
func withFields(fields ...string) logrus.Fields {
	fLen := len(fields)
	result := make(logrus.Fields, fLen/2)
	for ii := 0; ii < fLen; ii += 2 {
		if ii+1 >= fLen {
			break
		}

		result[fields[ii]] = fields[ii+1]
	}

	return result
}

// Converts string into a log level.
func getLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug", "dbg":
		return logrus.DebugLevel
	case "warning", "warn":
		return logrus.WarnLevel
	case "error", "err":
		return logrus.ErrorLevel
	}

	return logrus.InfoLevel
}
