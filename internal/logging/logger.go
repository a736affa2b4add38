// Package logging provides category loggers for csf2det built on zap.
// Output goes to stderr unless another writer is configured, so stdout stays
// reserved for expansion results.
// Each category can be switched off in the logging section of the config file.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"csf2det/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config loading
	CategoryParse  Category = "parse"  // Step-vector decoding and validation
	CategoryExpand Category = "expand" // Determinant walk
	CategoryRender Category = "render" // Result emitters
	CategoryBatch  Category = "batch"  // Job files and file watching
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	cfg     config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
)

// New builds a zap logger from the logging config. verbose forces the debug
// level, as --verbose does on the command line. A nil w logs to stderr.
func New(c config.LoggingConfig, verbose bool, w io.Writer) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if c.Level != "" {
		parsed, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		level = parsed
	}
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	var enc zapcore.Encoder
	switch c.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", c.Format)
	}

	var sink zapcore.WriteSyncer
	if w == nil {
		sink = zapcore.Lock(os.Stderr)
	} else {
		sink = zapcore.AddSync(w)
	}

	return zap.New(zapcore.NewCore(enc, sink, level)), nil
}

// Initialize installs the process-wide root logger used by Get.
// Calling it again replaces the root and drops cached category loggers.
func Initialize(c config.LoggingConfig, verbose bool, w io.Writer) error {
	l, err := New(c, verbose, w)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	root = l
	cfg = c
	loggers = make(map[Category]*zap.Logger)

	l.Named(string(CategoryBoot)).Debug("logging initialized",
		zap.String("level", l.Level().String()),
		zap.String("format", c.Format))
	return nil
}

// Get returns (or creates) a logger for the given category.
// Disabled categories get a no-op logger.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	l := zap.NewNop()
	if cfg.IsCategoryEnabled(string(category)) {
		l = root.Named(string(category))
	}
	loggers[category] = l
	return l
}

// Sync flushes the root logger. Errors from syncing a terminal are common
// and harmless, so callers usually discard them.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return root.Sync()
}
