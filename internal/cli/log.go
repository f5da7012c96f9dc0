package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// summary appends the elapsed time since progress was created to msg.
// Example: "Loaded 42 dependencies from cargo metadata (1.234s)"
func (p *progress) summary(msg string) string {
	return fmt.Sprintf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// done logs the summary of msg.
func (p *progress) done(msg string) {
	p.logger.Info(p.summary(msg))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports load and cargo events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("loading dependency graph", "source", source)
}

func (h logHooks) OnLoadComplete(_ context.Context, source string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("loading failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("dependency graph loaded", "source", source, "dependencies", count, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnExec(_ context.Context, name string, args []string) {
	h.logger.Debug("exec", "cmd", name+" "+strings.Join(args, " "))
}

func (h logHooks) OnExit(_ context.Context, name string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("exit", "cmd", name, "err", err, "took", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("exit", "cmd", name, "took", d.Round(time.Millisecond))
}
