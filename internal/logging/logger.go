package logging

import (
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/pkg"
)

// ServiceField is set on every entry, the draft service and the workout store
// usually ship to the same sink.
const ServiceField = "service"

// Params configure the process wide logrus logger of a fittrack binary.
type Params struct {
	Service     string
	Environment string
	Level       string
	FormatJSON  bool

	// File is the log file, logs go only to stdout when empty.
	File       string
	AlsoStdout bool
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	SentryEnabled bool
	SentryDSN     string
}

// FromConfig builds the params of one binary. Both binaries read the same
// config file, so the log file of each is passed in.
func FromConfig(cfg *config.Config, service, logFile, sentryDSN string) Params {
	return Params{
		Service:       service,
		Environment:   cfg.Environment,
		Level:         cfg.LogLevel,
		FormatJSON:    cfg.LogFormatJSON,
		File:          logFile,
		AlsoStdout:    cfg.LogToStdout,
		MaxSizeMB:     cfg.LogMaxSizeMB,
		MaxBackups:    cfg.LogMaxBackups,
		MaxAgeDays:    cfg.LogMaxAgeDays,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     sentryDSN,
	}
}

func Setup(params Params) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if params.Service != "" {
		logrus.AddHook(&serviceHook{service: params.Service})
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.Service,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		}

		logrus.AddHook(NewSentryHook([]logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		}))
		logrus.Infoln("sentry set up successfully")
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.File == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return
	}

	logFile := params.File
	if !strings.HasSuffix(logFile, ".log") {
		logFile += ".log"
	}
	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    params.MaxSizeMB,
		MaxBackups: params.MaxBackups,
		MaxAge:     params.MaxAgeDays,
		LocalTime:  false, // UTC
		Compress:   true,
	}

	if params.AlsoStdout {
		logrus.Printf("writing logs to [%s] and STDOUT", logFile)
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, rotating))
	} else {
		logrus.SetOutput(rotating)
	}
}

// GetLevel parses a logrus level name, unknown names mean trace.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}

type serviceHook struct {
	service string
}

func (h *serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data[ServiceField]; !ok {
		entry.Data[ServiceField] = h.service
	}
	return nil
}
