package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// ConsoleLogger writes debug and info messages to out, warnings and errors to errOut.
type ConsoleLogger struct {
	out       io.Writer
	errOut    io.Writer
	level     LogLevel
	component string
	color     bool
}

// NewConsole creates a console logger writing to stdout and stderr.
// Color output is enabled when stdout is a terminal.
func NewConsole(level LogLevel) *ConsoleLogger {
	return NewConsoleWriter(level, os.Stdout, os.Stderr)
}

// NewConsoleWriter creates a console logger writing to the given writers.
func NewConsoleWriter(level LogLevel, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		out:    out,
		errOut: errOut,
		level:  level,
		color:  isTerminal(out),
	}
}

func isTerminal(wrt io.Writer) bool {
	file, ok := wrt.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

func (l *ConsoleLogger) WithComponent(component string) Logger {
	return &ConsoleLogger{
		out:       l.out,
		errOut:    l.errOut,
		level:     l.level,
		component: component,
		color:     l.color,
	}
}

func (l *ConsoleLogger) log(level LogLevel, msg string, args ...interface{}) {
	if level < l.level || l.level == LevelQuiet {
		return
	}

	output := fmt.Sprintf(msg, args...)

	if l.component != "" {
		if l.color {
			output = fmt.Sprintf("%s[%s]%s %s", colorCyan, l.component, colorReset, output)
		} else {
			output = fmt.Sprintf("[%s] %s", l.component, output)
		}
	}

	if l.color {
		switch level {
		case LevelDebug:
			output = colorGray + output + colorReset
		case LevelWarn:
			output = colorYellow + output + colorReset
		case LevelError:
			output = colorRed + output + colorReset
		}
	}

	if level >= LevelWarn {
		fmt.Fprintln(l.errOut, output)
	} else {
		fmt.Fprintln(l.out, output)
	}
}

var _ Logger = (*ConsoleLogger)(nil)
