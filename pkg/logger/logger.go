package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

type Logger struct {
	*logrus.Logger
}

func New() *Logger {
	return NewWithOutput(os.Stdout, os.Stderr)
}

// NewWithOutput writes info lines to out and every other level to errOut.
// Info is reserved for progress output.
func NewWithOutput(out, errOut io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	l.AddHook(&writer.Hook{
		Writer:    out,
		LogLevels: []logrus.Level{logrus.InfoLevel},
	})
	l.AddHook(&writer.Hook{
		Writer: errOut,
		LogLevels: []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
			logrus.WarnLevel,
			logrus.DebugLevel,
			logrus.TraceLevel,
		},
	})
	return &Logger{Logger: l}
}

// SetVerbose switches between info and debug level.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.SetLevel(logrus.DebugLevel)
		return
	}
	l.SetLevel(logrus.InfoLevel)
}
