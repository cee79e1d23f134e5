// Package logging constrói o logger zap compartilhado pela API e pelo CLI.
package logging

import (
	"fmt"
	"strings"

	"github.com/dnsfilter/dnsfilter-report/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Campos padronizados dos logs estruturados
const (
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldDurationMS = "duration_ms"
	FieldCodigo     = "codigo"
	FieldCount      = "count"
	FieldError      = "error"
)

// New cria um logger conforme LOG_FORMAT (json ou console) e LOG_LEVEL
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	switch strings.ToLower(cfg.LogFormat) {
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	case "json", "":
		zcfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("LOG_FORMAT inválido: %q (use: json, console)", cfg.LogFormat)
	}

	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("erro ao criar logger: %w", err)
	}

	return logger.With(zap.String("service", cfg.ServiceName)), nil
}

// ParseLevel converte o nome do nível para zapcore.Level
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return level, fmt.Errorf("LOG_LEVEL inválido: %q: %w", name, err)
	}
	return level, nil
}
