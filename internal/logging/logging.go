// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package logging constructs the zap loggers used by the jlite tool.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levelMap = map[string]zapcore.Level{
	"DEBUG": zapcore.DebugLevel,
	"INFO":  zapcore.InfoLevel,
	"WARN":  zapcore.WarnLevel,
	"ERROR": zapcore.ErrorLevel,
}

var modeMap = map[string]func() zapcore.Encoder{
	"SIMPLE": simpleEncoder,
	"FULL":   fullEncoder,
}

// New returns a logger writing to w at the named level ("DEBUG", "INFO",
// "WARN", "ERROR") in the named mode ("SIMPLE" or "FULL"). Names are not
// case sensitive.
func New(w io.Writer, mode, level string) (*zap.Logger, error) {
	enc, ok := modeMap[strings.ToUpper(mode)]
	if !ok {
		return nil, fmt.Errorf("invalid log mode %q", mode)
	}
	lvl, ok := levelMap[strings.ToUpper(level)]
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	core := zapcore.NewCore(enc(), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func simpleEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.CallerKey = ""
	cfg.FunctionKey = ""
	cfg.EncodeTime = nil
	cfg.TimeKey = ""
	cfg.ConsoleSeparator = " "
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func fullEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(cfg)
}
