package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "GRID_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	envOnce sync.Once
)

// Init starts appending debug messages to path, replacing any earlier sink.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Close stops logging and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether messages are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadEnvLocked()
	return logFile != nil
}

// Log writes a timestamped message if logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadEnvLocked()
	if logFile == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// loadEnvLocked opens the GRID_DEBUG file the first time logging is used.
// Caller must hold mu.
func loadEnvLocked() {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			// Logging is best effort; a bad path just leaves it disabled.
			_ = initLocked(path)
		}
	})
}
