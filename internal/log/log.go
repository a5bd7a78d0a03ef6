package log

import (
	"io"
	"os"
	"strings"
	"time"

	cblog "github.com/charmbracelet/log"
)

var logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "azir",
})

// SetLevel accepts debug, info, warn, error or fatal. Unknown levels fall back to info.
func SetLevel(level string) {
	lvl, err := cblog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		logger.Warnf("unknown log level %q, using info", level)
		lvl = cblog.InfoLevel
	}
	logger.SetLevel(lvl)
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Debug(msg interface{}, keyvals ...interface{}) { logger.Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { logger.Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { logger.Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { logger.Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { logger.Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { logger.Fatalf(format, args...) }
