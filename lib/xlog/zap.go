package xlog

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ XLogger = (*xLogger)(nil)

type xLogger struct {
	logger atomic.Pointer[zap.Logger]
	stop   func() error
}

func (l *xLogger) IncreaseLogLevel(level LogLevel) {
	logger := l.logger.Load().WithOptions(zap.IncreaseLevel(level.zapLevel()))
	l.logger.Store(logger)
}

func (l *xLogger) Sync() error {
	err := l.logger.Load().Sync()
	if l.stop != nil {
		err = multierr.Append(err, l.stop())
	}
	return err
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Load().Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	newFields = append(newFields, zap.String("error", err.Error()))
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) Logf(lvl LogLevel, format string, args ...any) {
	l.logger.Load().Log(lvl.zapLevel(), fmt.Sprintf(format, args...))
}

func (l *xLogger) Named(name string) XLogger {
	child := &xLogger{}
	child.logger.Store(l.logger.Load().Named(name))
	return child
}

type loggerCfg struct {
	level   LogLevel
	encoder LogEncoderType
	ws      zapcore.WriteSyncer
	stop    func() error
}

type XLoggerOption func(*loggerCfg)

func WithLogLevel(level LogLevel) XLoggerOption {
	return func(cfg *loggerCfg) {
		cfg.level = level
	}
}

func WithLogEncoder(encoder LogEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) {
		cfg.encoder = encoder
	}
}

// WithLogWriteSyncer redirects the output, mainly for tests.
func WithLogWriteSyncer(ws zapcore.WriteSyncer) XLoggerOption {
	return func(cfg *loggerCfg) {
		cfg.ws = ws
		cfg.stop = nil
	}
}

// NewXLogger builds a buffered stdout logger. Callers own the Sync
// call at shutdown.
func NewXLogger(opts ...XLoggerOption) XLogger {
	bws := stdoutWriteSyncer()
	cfg := &loggerCfg{
		level:   LogLevelInfo,
		encoder: PlainText,
		ws:      bws,
		stop:    bws.Stop,
	}
	for _, o := range opts {
		o(cfg)
	}

	core := zapcore.NewCore(
		cfg.encoder.encoder()(consoleEncoderConfig()),
		cfg.ws,
		zap.NewAtomicLevelAt(cfg.level.zapLevel()),
	)
	l := &xLogger{stop: cfg.stop}
	l.logger.Store(zap.New(core))
	return l
}
