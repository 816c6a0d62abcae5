package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// RestyLogger routes resty client messages to slog.
type RestyLogger struct {
	logger *slog.Logger
}

func NewRestyLogger(logger *slog.Logger) *RestyLogger {
	return &RestyLogger{logger: logger.With("component", "resty")}
}

func (l *RestyLogger) Errorf(format string, v ...any) {
	l.logger.Error(message(format, v...))
}

func (l *RestyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(message(format, v...))
}

func (l *RestyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(message(format, v...))
}

func message(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
