package utils

import (
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = ".docsum/docsum.log"

// Logger writes run details to a rotating log file. Command output itself
// goes to stdout/stderr; the log file keeps a record of what each run did.
type Logger struct {
	logger *log.Logger
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton logger, creating the rotating file handler
// on first use. DOCSUM_LOG_FILE overrides the default location.
func GetLogger() *Logger {
	once.Do(func() {
		path := defaultLogFile
		if v := os.Getenv("DOCSUM_LOG_FILE"); v != "" {
			path = v
		}
		logFile := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = &Logger{
			logger: log.New(logFile, "", log.LstdFlags),
		}
	})
	return globalLogger
}

// Close flushes and closes the underlying log file.
func (l *Logger) Close() error {
	if logFile, ok := l.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}

// Log writes a message to the log file.
func (l *Logger) Log(message string) {
	l.logger.Print(message)
}

// Logf writes a formatted message to the log file.
func (l *Logger) Logf(format string, v ...interface{}) {
	l.logger.Printf(format, v...)
}

// LogError records an error in the log file.
func (l *Logger) LogError(err error) {
	l.logger.Printf("Error: %s", err)
}
