package debug

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once   sync.Once
	logger *logrus.Logger
)

// Log writes a formatted debug message if TUI_DEBUG points at a file.
// Safe to call from any goroutine; a no-op when debugging is disabled.
func Log(format string, args ...any) {
	once.Do(initLogger)
	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

func initLogger() {
	path := os.Getenv("TUI_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		// Debug logging is best-effort; a bad path just disables it.
		return
	}
	logger = logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
}
