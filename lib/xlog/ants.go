package xlog

import (
	"fmt"
)

// AntsXLogger adapts an XLogger to the ants pool Logger interface so
// pool internals (panic reports, purge activity) land in the same
// sink as everything else.
type AntsXLogger struct {
	logger XLogger
}

func (l *AntsXLogger) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func NewAntsXLogger(logger XLogger) *AntsXLogger {
	return &AntsXLogger{logger: logger.Named("Ants")}
}
