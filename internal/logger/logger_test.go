package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestDebug_SilentByDefault(t *testing.T) {
	defer reset()
	buf := new(bytes.Buffer)
	SetOutput(buf)

	Debug("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebug_PrintsWhenVerbose(t *testing.T) {
	defer reset()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Debug("queue entry %d", 42)

	assert.Contains(t, buf.String(), "[DEBUG] queue entry 42")
}

func TestInfo_PrintsWhenVerbose(t *testing.T) {
	defer reset()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Info("refreshing token for %s", "Jan")

	assert.Contains(t, buf.String(), "[INFO] refreshing token for Jan")
}

func TestWarn_AlwaysPrints(t *testing.T) {
	defer reset()
	buf := new(bytes.Buffer)
	SetOutput(buf)

	Warn("skipping %s", "Jan")

	assert.Contains(t, buf.String(), "[WARN] skipping Jan")
}

func TestIsVerbose(t *testing.T) {
	defer reset()
	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}
