package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLoggingTo(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, false)
	Debug("hidden")
	Info("generated", "module", "App")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "generated")
	assert.Contains(t, buf.String(), "module=App")

	buf.Reset()
	SetupLoggingTo(&buf, true)
	Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	Error("failed", "module", "App")
	assert.Contains(t, buf.String(), "failed")
}
