package main

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

//logOptions selects where and how gofrag logs.
type logOptions struct {
	Level  string //debug, info, warn, error
	Format string //console or json
	File   string //if not empty, logs are also written, as JSON, to this file
}

//logger is the logger of the current run. nil before initLogger.
var logger atomic.Pointer[zap.Logger]

func encoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	switch strings.ToLower(format) {
	case "console", "":
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	}
	return nil, fmt.Errorf("log format %q is not valid. Valid options are [console json]", format)
}

//initLogger builds the logger described by opts, writing to w, and makes it the global
//zap logger, which the gofrag packages use. The returned function restores the
//previous global logger.
func initLogger(opts logOptions, w zapcore.WriteSyncer) (func(), error) {
	level := zap.NewAtomicLevel()
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("log level %q is not valid: %w", opts.Level, err)
		}
	} else {
		level.SetLevel(zap.WarnLevel)
	}
	enc, err := encoder(opts.Format)
	if err != nil {
		return nil, err
	}
	cores := []zapcore.Core{zapcore.NewCore(enc, w, level)}
	if opts.File != "" {
		fileEnc, _ := encoder("json")
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, //MB
			MaxBackups: 3,
			MaxAge:     28, //days
		})
		cores = append(cores, zapcore.NewCore(fileEnc, fileWriter, level))
	}
	l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("gofrag")
	logger.Store(l)
	undo := zap.ReplaceGlobals(l)
	return func() {
		_ = l.Sync()
		undo()
		logger.Store(nil)
	}, nil
}

//getLogger returns the logger of the run, or a no-op logger if there is none.
func getLogger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}
