package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	tmlog "github.com/tendermint/tendermint/libs/log"
)

var (
	customLog tmlog.Logger = tmlog.NewNopLogger()
	mu        sync.RWMutex
)

// InitLogger writes to stdout, dropping everything below level.
func InitLogger(level string) error {
	return setLogger(os.Stdout, level)
}

// ResetLogger moves the output into <home>/logs/relayerd.<pid>.log.
func ResetLogger(home, level string) (string, error) {
	dir := filepath.Join(home, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("relayerd.%d.log", os.Getpid()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Infof("from now on, all logs will be written to %s", path)
	return path, setLogger(file, level)
}

// SetLogger replaces the package logger.
func SetLogger(logger tmlog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	customLog = logger
}

// Logger returns the package logger for components that log with key-value pairs.
func Logger() tmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return customLog
}

func setLogger(w io.Writer, level string) error {
	option, err := tmlog.AllowLevel(level)
	if err != nil {
		return err
	}

	SetLogger(tmlog.NewFilter(tmlog.NewTMLogger(tmlog.NewSyncWriter(w)), option).With("module", "relayer"))
	return nil
}

func Debugf(format string, v ...any) {
	Logger().Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...any) {
	Logger().Info(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	Logger().Error(fmt.Sprintf(format, v...))
}

func Fatalf(format string, v ...any) {
	Logger().Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
