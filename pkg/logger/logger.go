package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger for the given level and environment. Production
// output is JSON, everything else uses the text formatter.
func New(level, env string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if env == "production" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return l
}

// Init builds the application logger and applies the same settings to
// the logrus standard logger.
func Init(level, env string) *logrus.Logger {
	l := New(level, env)

	std := logrus.StandardLogger()
	std.SetOutput(l.Out)
	std.SetLevel(l.GetLevel())
	std.SetFormatter(l.Formatter)

	return l
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
