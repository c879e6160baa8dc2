package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_WritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{
		Level:      zerolog.InfoLevel,
		TimeFormat: "15:04:05",
		Output:     &buf,
	})

	l.Info("server started")
	assert.Contains(t, buf.String(), "server started")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{
		Level:      zerolog.WarnLevel,
		TimeFormat: "15:04:05",
		Output:     &buf,
	})

	l.Debug("noisy detail")
	assert.Empty(t, buf.String())

	l.Error(errors.New("boom"), "request failed")
	assert.Contains(t, buf.String(), "request failed")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{
		Level:      zerolog.InfoLevel,
		TimeFormat: "15:04:05",
		Output:     &buf,
	})

	l.WithFields(map[string]interface{}{"pharmacist": "pharm1"}).Info("order placed")
	assert.Contains(t, buf.String(), "pharm1")
}
