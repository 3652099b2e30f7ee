package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "info")

	l.Info("[test] loaded %d rows", 56)
	l.Debug("[test] hidden")
	l.Warn("[test] careful")
	l.Error("[test] broken: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "loaded 56 rows")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "broken: boom")
	assert.NotContains(t, out, "hidden")
	assert.False(t, l.DebugEnabled())
}

func TestLoggerDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "DEBUG")

	l.Debug("[test] visible %s", "now")
	assert.True(t, l.DebugEnabled())
	assert.Contains(t, buf.String(), "visible now")
}
