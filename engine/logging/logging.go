// Package logging builds the process logger: human-readable console output on stderr, plus an
// optional size-rotated JSON file.
package logging

import (
	"os"

	"github.com/Carmen-Shannon/oxy-inspect/engine/config"
	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger from the log section of the configuration.
//
// Parameters:
//   - cfg: log settings
//
// Returns:
//   - *zap.Logger: the logger
//   - error: if the level is not a zap level name
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	consoleEnc := zap.NewDevelopmentEncoderConfig()
	consoleEnc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEnc), zapcore.Lock(os.Stderr), level),
	}

	if cfg.File != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(Rotator(cfg)),
			level,
		))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// Rotator returns the rotating file writer for cfg.File.
//
// Parameters:
//   - cfg: log settings
//
// Returns:
//   - *lumberjack.Logger: the writer
func Rotator(cfg config.Log) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
}

// ParseLevel converts a level name; empty means info.
//
// Parameters:
//   - name: debug, info, warn, error, dpanic, panic or fatal
//
// Returns:
//   - zap.AtomicLevel: the level
//   - error: if the name is unknown
func ParseLevel(name string) (zap.AtomicLevel, error) {
	if name == "" {
		return zap.NewAtomicLevelAt(zap.InfoLevel), nil
	}
	level, err := zap.ParseAtomicLevel(name)
	if err != nil {
		return level, errors.Wrapf(err, "logging: level %q", name)
	}
	return level, nil
}
