// Package logger создаёт zap-логгеры для бинарников магазина.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создаёт логгер с указанным уровнем. Уровень debug включает
// консольный вывод для разработки, остальные используют JSON.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return build(lvl, "")
}

// NewTerminal создаёт логгер для интерактивных клиентов, чей stdout занят
// интерфейсом. С непустым path журнал пишется в файл с уровнем level,
// иначе в stderr попадают только предупреждения и ошибки.
func NewTerminal(level, path string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	if path == "" && lvl < zapcore.WarnLevel {
		lvl = zapcore.WarnLevel
	}
	return build(lvl, path)
}

func build(lvl zapcore.Level, path string) (*zap.Logger, error) {
	var cfg zap.Config
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
