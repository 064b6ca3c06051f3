package formatstyle

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger receives diagnostics about silent degradations (engine or pattern
// fallbacks, cache flushes). *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(template string, args ...any)
	Warnf(template string, args ...any)
}

var _ Logger = (*zap.SugaredLogger)(nil)

// DiscardLogger drops every message
var DiscardLogger Logger = zap.NewNop().Sugar()

// NewZapLogger builds a console logger writing to writers (stdout when none is given).
func NewZapLogger(level zapcore.Level, writers ...io.Writer) Logger {
	if len(writers) == 0 {
		writers = []io.Writer{os.Stdout}
	}

	syncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, writer := range writers {
		syncers = append(syncers, zapcore.AddSync(writer))
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core, zap.AddCaller()).Named("formatstyle").Sugar()
}
