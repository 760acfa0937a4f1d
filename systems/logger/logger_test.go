package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Tests proper fields allocation.
func TestCorrectFields(t *testing.T) {
	r := withFields("f1", "f1", "f2", "f2")
	assert.Equal(t, 2, len(r))

	r = withFields("f1", "f1", "f2", "f2", "f3")
	assert.Equal(t, 2, len(r))
}

// Tests loading log level.
func TestLogLevel(t *testing.T) {
	in := []struct {
		In       string
		Expected logrus.Level
	}{
		{In: "warning", Expected: logrus.WarnLevel},
		{In: "warn", Expected: logrus.WarnLevel},
		{In: "error", Expected: logrus.ErrorLevel},
		{In: "err", Expected: logrus.ErrorLevel},
		{In: "debug", Expected: logrus.DebugLevel},
		{In: "DBG", Expected: logrus.DebugLevel},
		{In: "info", Expected: logrus.InfoLevel},
		{In: "incorrect", Expected: logrus.InfoLevel},
	}

	for _, v := range in {
		assert.Equal(t, v.Expected, getLogLevel(v.In), v.In)
	}
}

// Tests that messages and fields reach the output.
func TestLoggerOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLoggerProvider(&ConstructLogger{
		Level:  "warn",
		Output: buf,
		JSON:   true,
	})

	l.Info("skipped")
	assert.Equal(t, 0, buf.Len())

	l.Error("failed", errors.New("boom"), "key", "value")
	out := buf.String()
	assert.Contains(t, out, `"msg":"failed"`)
	assert.Contains(t, out, `"key":"value"`)
	assert.Contains(t, out, `"error":"boom"`)
}
