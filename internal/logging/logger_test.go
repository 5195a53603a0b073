package logging

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("ERROR"))
	assert.Equal(t, logrus.FatalLevel, GetLevel("fatal"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("Info"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("verbose"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(""))
}

func TestSentryHook_Levels(t *testing.T) {
	levels := []logrus.Level{logrus.PanicLevel, logrus.ErrorLevel}
	hook := NewSentryHook(levels)
	assert.Equal(t, levels, hook.Levels())
}

func TestBuildEvent(t *testing.T) {
	base := errors.New("disk full")
	entry := &logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "save measurement",
		Time:    time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC),
		Data: logrus.Fields{
			"measurement_id": "abc",
			logrus.ErrorKey:  fmt.Errorf("put blob: %w", base),
		},
	}

	event := buildEvent(entry)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "save measurement", event.Message)
	assert.Equal(t, entry.Time, event.Timestamp)
	assert.Equal(t, map[string]any{"measurement_id": "abc"}, event.Extra)
	require.Len(t, event.Exception, 2)
	assert.Equal(t, "put blob: disk full", event.Exception[0].Value)
	assert.Equal(t, "disk full", event.Exception[1].Value)
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelInfo, sentryLevel(logrus.InfoLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}

func TestSetup(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	}()

	console := &bytes.Buffer{}
	Setup(LoggerSetupParams{
		LogLevel: "debug",
		Console:  console,
	})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.Contains(t, console.String(), "writing logs only to console")

	console.Reset()
	logFile := filepath.Join(t.TempDir(), "service")
	Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogToStdout: true,
		LogLevel:    "info",
		Console:     console,
	})
	logrus.Info("measurement added")

	assert.Contains(t, console.String(), "measurement added")
	content, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "measurement added")
}
