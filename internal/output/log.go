// Package output provides terminal output utilities.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// stdout receives command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps controls timestamps in log output. Nil means on.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
// Verbose forces timestamps on regardless of Timestamps.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil && !cfg.Verbose {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetLogWriter redirects log output.
func SetLogWriter(w io.Writer) {
	logger.SetOutput(w)
}

// CodestartLogger returns a sub-logger prefixed with the codestart name.
// It shares the level and options of the global logger.
func CodestartLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("c:") + StyleNoun.Render(name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Details writes multi-line detail text to stderr, below a log line.
func Details(text string) {
	fmt.Fprintln(os.Stderr, text)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}
