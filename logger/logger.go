package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fatih/color"
)

// Logger writes colored, leveled lines tagged with a component name.
type Logger struct {
	component string
}

func New(component string) *Logger {
	return &Logger{component: component}
}

// With returns a logger for a sub-component, e.g. "api.auth".
func (l *Logger) With(component string) *Logger {
	if l == nil || l.component == "" {
		return New(component)
	}
	return New(l.component + "." + component)
}

func (l *Logger) formatMessage(level, msg string) string {
	_, file, line, _ := runtime.Caller(2)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	return fmt.Sprintf("%s | %-7s | %s:%d | %s | %s",
		timestamp,
		level,
		filepath.Base(file),
		line,
		l.component,
		msg,
	)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	color.Cyan(l.formatMessage("INFO", fmt.Sprintf(msg, args...)))
}

func (l *Logger) Success(msg string, args ...interface{}) {
	color.Green(l.formatMessage("SUCCESS", fmt.Sprintf(msg, args...)))
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	color.Yellow(l.formatMessage("WARN", fmt.Sprintf(msg, args...)))
}

// Error logs msg followed by err and returns err wrapped with msg.
func (l *Logger) Error(msg string, err error, args ...interface{}) error {
	text := fmt.Sprintf(msg, args...)
	color.Red(l.formatMessage("ERROR", fmt.Sprintf("%s: %v", text, err)))
	return fmt.Errorf("%s: %w", text, err)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	color.Magenta(l.formatMessage("DEBUG", fmt.Sprintf(msg, args...)))
}
