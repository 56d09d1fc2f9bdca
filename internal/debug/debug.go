package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SPLITPANE_DEBUG"

var (
	mu     sync.Mutex
	logger *slog.Logger
	closer io.Closer
	loaded bool
)

// Init directs debug output to the file at path, creating parent
// directories as needed. An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	loaded = true
	return openLocked(path)
}

// openLocked replaces the current output. Caller must hold mu.
func openLocked(path string) error {
	closeLocked()
	if path == "" {
		return nil
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
	closer = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

func closeLocked() {
	if closer != nil {
		closer.Close()
	}
	closer = nil
	logger = nil
}

// SetOutput sends debug output to w. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loaded = true
	if w != nil {
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	var err error
	if closer != nil {
		err = closer.Close()
	}
	closer = nil
	logger = nil
	return err
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return logger != nil
}

// loadLocked lazily reads the environment the first time a message is logged.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		if err := openLocked(path); err != nil {
			fmt.Fprintf(os.Stderr, "splitpane: %v\n", err)
		}
	}
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	if logger == nil {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
