// Package logging provides the shared zap logger used across propkit.
// The default logger writes console-formatted output at info level; the CLI
// replaces it once configuration is loaded.
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger settings.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

var (
	mu    sync.Mutex
	log   = newLogger(Config{Level: "info", Format: "console"})
	sugar = log.Sugar()
)

func newLogger(cfg Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), level)
	return zap.New(core)
}

// Initialize replaces the shared logger. Called once at startup after
// configuration is loaded.
func Initialize(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(cfg)
	sugar = log.Sugar()
}

// L returns the shared structured logger.
func L() *zap.Logger {
	return log
}

// S returns the shared sugared logger.
func S() *zap.SugaredLogger {
	return sugar
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

// Infof logs a formatted message at info level.
func Infof(format string, args ...any) {
	sugar.Infof(format, args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...any) {
	sugar.Warnf(format, args...)
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = log.Sync()
}
