package main

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/rocket/constants"
)

// setupLogging opens the rotating log file under dir. It never logs to stdout or stderr,
// the terminal is in raw mode for the whole run.
// Returns a nop logger and nil file when disabled
func setupLogging(dir string, enabled, debug bool) (*zap.Logger, *lumberjack.Logger) {
	if !enabled {
		return zap.NewNop(), nil
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.LogFileName),
		MaxSize:    constants.MaxLogSizeMB,
		MaxBackups: constants.MaxLogBackups,
		MaxAge:     constants.MaxLogAgeDays,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level)

	logger := zap.New(core, zap.AddCaller())
	logger.Info("logging started", zap.String("file", lj.Filename), zap.Stringer("level", level))
	return logger, lj
}
