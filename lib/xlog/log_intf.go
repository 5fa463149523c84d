package xlog

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (lvl LogLevel) zapLevel() zapcore.Level {
	switch lvl {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
	}
	return zapcore.InfoLevel
}

func (lvl LogLevel) String() string {
	return string(lvl)
}

// ParseLogLevel maps a case-insensitive level name to a LogLevel,
// defaulting to INFO.
func ParseLogLevel(name string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
	}
	return LogLevelInfo
}

type LogEncoderType uint8

const (
	JSON LogEncoderType = iota
	PlainText
)

func (typ LogEncoderType) encoder() func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if typ == PlainText {
		return zapcore.NewConsoleEncoder
	}
	return zapcore.NewJSONEncoder
}

// stdoutWriteSyncer buffers stdout writes; Stop must run before the
// process exits or trailing entries are lost.
func stdoutWriteSyncer() *zapcore.BufferedWriteSyncer {
	return &zapcore.BufferedWriteSyncer{
		WS:            zapcore.Lock(os.Stdout),
		Size:          512 * 1024,
		FlushInterval: 30 * time.Second,
	}
}

// XLogger is the logging surface the rest of the project sees.
type XLogger interface {
	IncreaseLogLevel(level LogLevel)
	Sync() error

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	Logf(lvl LogLevel, format string, args ...any)

	// Named returns a child logger under the given component name.
	Named(name string) XLogger
}
