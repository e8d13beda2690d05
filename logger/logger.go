package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is nil until Init runs.
var Log *logrus.Logger

// Init sets up Log from LOG_LEVEL and LOG_FORMAT. Call it once from main.
func Init() {
	Log = New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// New builds a logger writing to out. Unknown levels fall back to info;
// format "json" selects the JSON formatter, anything else plain text.
func New(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()

	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
	return l
}
