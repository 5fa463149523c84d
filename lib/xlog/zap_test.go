package xlog

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type memSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *memSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *memSink) Sync() error { return nil }

func (s *memSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func newMemLogger(opts ...XLoggerOption) (XLogger, *memSink) {
	sink := &memSink{}
	opts = append(opts, WithLogWriteSyncer(zapcore.AddSync(sink)))
	return NewXLogger(opts...), sink
}

func TestXLogger_LevelsAndFields(t *testing.T) {
	logger, sink := newMemLogger(WithLogLevel(LogLevelDebug), WithLogEncoder(JSON))

	logger.Debug("dbg", zap.Int("n", 1))
	logger.Info("inf")
	logger.Warn("wrn")
	logger.Error(errors.New("boom"), "err happened")
	logger.Logf(LogLevelInfo, "count=%d", 42)
	require.NoError(t, logger.Sync())

	out := sink.String()
	assert.Contains(t, out, `"msg":"dbg"`)
	assert.Contains(t, out, `"n":1`)
	assert.Contains(t, out, `"msg":"err happened"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, "count=42")
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	logger, sink := newMemLogger(WithLogLevel(LogLevelDebug), WithLogEncoder(JSON))
	logger.IncreaseLogLevel(LogLevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")
	require.NoError(t, logger.Sync())

	out := sink.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestXLogger_Named(t *testing.T) {
	logger, sink := newMemLogger(WithLogEncoder(JSON))
	logger.Named("Bench").Info("run done")
	require.NoError(t, logger.Sync())
	assert.Contains(t, sink.String(), `"component":"Bench"`)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel(" warning "))
	assert.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("nonsense"))
}

func TestAntsXLogger_Printf(t *testing.T) {
	logger, sink := newMemLogger(WithLogLevel(LogLevelDebug), WithLogEncoder(JSON))
	al := NewAntsXLogger(logger)
	al.Printf("worker %d exited", 3)
	require.NoError(t, logger.Sync())

	out := sink.String()
	assert.Contains(t, out, "worker 3 exited")
	assert.True(t, strings.Contains(out, `"component":"Ants"`))

	var nilLogger *AntsXLogger
	nilLogger.Printf("must not panic")
}
