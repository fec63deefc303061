package logging

import (
	"io"
	"os"
	"strings"

	"github.com/stridewise/backend/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger: level, format, sentry hook for
// error-and-above entries, and the output destination. With an empty
// LogFileName everything goes to stdout; otherwise logs land in a rotated
// file, optionally mirrored to stdout.
func Setup(params LoggerSetupParams) {
	logrus.SetLevel(ParseLevel(params.LogLevel))

	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry set up")
		}
	}

	logrus.SetOutput(logOutput(params.LogFileName, params.LogToStdout))
}

func logOutput(logFileName string, logToStdout bool) io.Writer {
	if logFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    100, // megabytes
		MaxBackups: 10,
		MaxAge:     90, // days
		LocalTime:  false,
		Compress:   true,
	}

	if logToStdout {
		logrus.Println("writing logs to file and STDOUT")
		return pkg.NewCombinedWriter(os.Stdout, fileLogger)
	}
	return fileLogger
}

// ParseLevel maps a config string onto a logrus level, falling back to trace
// so a misconfigured level never hides logs.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
