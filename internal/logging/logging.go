// Package logging writes debug traces to a file, since the terminal belongs to
// the picker while it runs.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logDir  string
	logFile *os.File
)

// Enable turns on debug logging into dir. The file is created on the first
// message.
func Enable(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logDir = dir
}

// initLogging opens a timestamped log file in logDir.
func initLogging() error {
	if logFile != nil {
		return nil
	}
	if logDir == "" {
		return fmt.Errorf("logging not enabled")
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("hsbpick_%s.log",
		time.Now().Format("2006-01-02_15-04-05")))

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	logFile = f
	return nil
}

// Debugf writes a debug-level message if logging is enabled.
func Debugf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if err := initLogging(); err != nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logDir = ""
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
