package logging

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards log entries of the given levels to Sentry.
type SentryHook struct {
	levels  []logrus.Level
	hub     *sentry.Hub
	timeout time.Duration
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels:  levels,
		hub:     sentry.CurrentHub(),
		timeout: 2 * time.Second,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	h.hub.CaptureEvent(buildEvent(entry))
	// fatal and panic entries terminate the process right after the hook
	if entry.Level <= logrus.FatalLevel {
		h.hub.Flush(h.timeout)
	}
	return nil
}

func buildEvent(entry *logrus.Entry) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time
	event.Logger = "logrus"

	extra := make(map[string]any, len(entry.Data))
	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			continue
		}
		extra[k] = v
	}
	event.Extra = extra

	if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
		for e := err; e != nil; e = errors.Unwrap(e) {
			event.Exception = append(event.Exception, sentry.Exception{
				Type:  "error",
				Value: e.Error(),
			})
		}
	}

	return event
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
