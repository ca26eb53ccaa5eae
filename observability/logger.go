// Package observability builds the process logger.
//
// The terminal UI owns stdout, so interactive runs log only to a rotated file
// and fall back to a no-op logger when no file is configured. Headless runs
// may add a console core on stderr.
package observability

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/particle-field/config"
)

// ServiceName names the root logger
const ServiceName = "particle-field"

// NewLogger builds a logger from cfg
// console, when non-nil, receives human-readable output in addition to the file
func NewLogger(cfg config.LogConfig, console io.Writer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	var cores []zapcore.Core

	if cfg.File != "" {
		// lumberjack handles rotation and is safe for concurrent writes
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder(cfg.Format), fileWriter, level))
	}

	if console != nil {
		cores = append(cores, zapcore.NewCore(encoder("console"), zapcore.Lock(zapcore.AddSync(console)), level))
	}

	if len(cores) == 0 {
		return zap.NewNop()
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named(ServiceName)
}

func encoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}
