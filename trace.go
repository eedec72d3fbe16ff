package zwutil

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"sync/atomic"
)

var traceLogger atomic.Pointer[slog.Logger]

// SetLogger enables propagation tracing: every failure passed through
// ReturnOnError, BreakOnError, GotoOnError, AssignOrReturn or Sequence is
// logged at debug level with the calling site. A nil logger disables it,
// which is the default.
func SetLogger(l *slog.Logger) {
	traceLogger.Store(l)
}

// tracePropagation records a failing code. skip counts frames above the
// caller of tracePropagation.
func tracePropagation(code Code, skip int) {
	l := traceLogger.Load()
	if l == nil || !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	site := "unknown"
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		site = filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	l.Debug("error propagated",
		"code", int32(code),
		"name", code.String(),
		"site", site,
	)
}
