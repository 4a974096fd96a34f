package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arbograph/gql/gqlerr"
)

// newLogger builds the stderr logger used to record rejected queries. The
// CLI is the only layer that logs — gql.Parse itself never does.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), zap.WarnLevel)
	return zap.New(core)
}

// logRejection records a failed parse at warn level with its structured
// fields, independent of the human-readable message reportParseError
// prints to stderr right after it.
func logRejection(log *zap.Logger, query string, err *gqlerr.Error) {
	log.Warn("query rejected",
		zap.String("kind", err.Kind.String()),
		zap.String("dialect", string(err.Dialect)),
		zap.Int("offset", err.Pos.Offset),
		zap.Int("line", err.Pos.Line),
		zap.Int("column", err.Pos.Column),
		zap.String("message", err.Message),
		zap.String("query", query),
	)
}
