package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/axend/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const maxLogFileSizeMB = 50

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

// Setup configures the global logrus logger. Errors and worse go to sentry
// when it is enabled.
func Setup(params LoggerSetupParams) {
	logrus.SetFormatter(formatter(params.LogFormatJSON))
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetOutput(output(params.LogFileName, params.LogToStdout))
	logrus.Debugf("logging set up, level [%s], file [%s]", logrus.GetLevel(), params.LogFileName)
}

func formatter(asJSON bool) logrus.Formatter {
	if asJSON {
		return &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "message",
			},
		}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 0.2,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry hook added")
}

// output picks where log lines go. Empty file name means stdout only.
func output(fileName string, alsoStdout bool) io.Writer {
	if fileName == "" {
		return os.Stdout
	}
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:  fileName,
		MaxSize:   maxLogFileSizeMB,
		LocalTime: false, // UTC
		Compress:  true,
	}
	if alsoStdout {
		return pkg.NewCombinedWriter(os.Stdout, rotating)
	}
	return rotating
}

// GetLevel maps a config level name to logrus, defaulting to trace.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
