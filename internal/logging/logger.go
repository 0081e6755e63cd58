// Package logging builds the zap logger used by the filenamify CLI.
//
// The sanitizer itself never logs; only the command line front end does.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to w.
//
// By default it emits JSON at warn level, which keeps stdout/stderr clean
// for piping. Verbose switches to a human readable console encoder at
// debug level.
func New(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encoderCfg)
	if verbose {
		level = zapcore.DebugLevel
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}
