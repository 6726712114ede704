// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger tees console output with a rolling JSON log file under
// [logDir].
func newLogger(level string, logDir string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		lvl,
	)

	rw := &lumberjack.Logger{
		Filename:   path.Join(logDir, "minisol-cli.log"),
		MaxSize:    8, // megabytes
		MaxBackups: 4, // files
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rw),
		lvl,
	)

	return zap.New(zapcore.NewTee(consoleCore, fileCore)), nil
}
