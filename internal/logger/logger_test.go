package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/edugame/internal/logger"
)

func newBufferLogger(level logger.Level) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(level),
		logger.WithColors(false),
	), &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferLogger(logger.WARN)

	log.Info("hidden")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "WARN")
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	log, buf := newBufferLogger(logger.DEBUG)

	log.WithFields(map[string]any{"zeta": 1, "alpha": 2}).Info("msg")

	out := buf.String()
	assert.Less(t, strings.Index(out, "alpha=2"), strings.Index(out, "zeta=1"))
}

func TestLogger_RedactsSensitiveFields(t *testing.T) {
	log, buf := newBufferLogger(logger.DEBUG)

	log.WithField("password", "hunter2").WithField("Password", "x").Info("login")

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "password=[REDACTED]")
}

func TestLogger_PrefixAndContext(t *testing.T) {
	log, buf := newBufferLogger(logger.DEBUG)

	ctx := logger.NewContext(context.Background(), log.WithPrefix("portal"))
	logger.FromContext(ctx).Debug("hello")

	assert.Contains(t, buf.String(), "[portal]")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("WARNING"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel("ERROR"))
	assert.Equal(t, logger.INFO, logger.ParseLevel("nonsense"))
}
