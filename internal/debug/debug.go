package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "MEDIAVIEW_DEBUG"

var (
	logFile    *os.File
	logger     = slog.New(slog.DiscardHandler)
	envChecked bool
	mu         sync.Mutex
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envChecked = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

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
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close closes the debug log file and reverts to discarding records.
// The environment variable is consulted again on the next call to Logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(slog.DiscardHandler)
	envChecked = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the process debug logger.
// The first call opens the file named by MEDIAVIEW_DEBUG, if set.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !envChecked {
		envChecked = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "debug: %v\n", err)
			}
		}
	}
	return logger
}
