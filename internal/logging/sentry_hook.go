package logging

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards high severity log entries to sentry.
type SentryHook struct {
	levels []logrus.Level
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = logrusLevel2sentry(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time

	for key, value := range entry.Data {
		if err, ok := value.(error); ok {
			sentry.CaptureException(err)
			continue
		}
		event.Extra[key] = value
	}

	if entry.Level <= logrus.ErrorLevel {
		sentry.CaptureException(errors.New(entry.Message))
		return nil
	}

	sentry.CaptureEvent(event)
	return nil
}

func logrusLevel2sentry(level logrus.Level) sentry.Level {
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
