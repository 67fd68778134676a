// Package logging configures the zerolog console logger used by the
// slotflow command.
package logging

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35

	colorBold     = 1
	colorDarkGray = 90
)

// Level maps a -v count onto a zerolog level: 0 is Info, 1 Debug, more Trace.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a console logger writing to w: short time, caller, boxed
// level, message, then fields.
func New(w io.Writer, noColour bool, verbosity int) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: noColour}
	cw.FormatCaller = func(i any) string { return formatCaller(i, noColour) }
	cw.FormatLevel = func(i any) string { return formatLevel(i, noColour) }
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.CallerFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}
	return zerolog.New(cw).Level(Level(verbosity)).With().Timestamp().Caller().Logger()
}

func colorize(s any, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// formatCaller trims the caller to "file.go:line".
func formatCaller(i any, noColour bool) string {
	c, _ := i.(string)
	if c == "" {
		return ""
	}
	if idx := strings.LastIndexByte(c, '/'); idx >= 0 {
		c = c[idx+1:]
	}
	if file, line, ok := strings.Cut(c, ":"); ok {
		if n, err := strconv.Atoi(line); err == nil {
			c = fmt.Sprintf("%s:%-4d", file, n)
		}
	}
	return colorize(c, colorDarkGray, noColour)
}

func formatLevel(i any, noColour bool) string {
	ll, ok := i.(string)
	if !ok {
		if i == nil {
			return colorize("| ??? |", colorBold, noColour)
		}
		return strings.ToUpper(fmt.Sprintf("| %5v |", i))
	}
	switch ll {
	case zerolog.LevelTraceValue:
		return colorize("| TRACE |", colorMagenta, noColour)
	case zerolog.LevelDebugValue:
		return colorize("| DEBUG |", colorYellow, noColour)
	case zerolog.LevelInfoValue:
		return colorize("| INFO  |", colorGreen, noColour)
	case zerolog.LevelWarnValue:
		return colorize("| WARN  |", colorRed, noColour)
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return colorize(colorize(fmt.Sprintf("| %-5s |", strings.ToUpper(ll)), colorRed, noColour), colorBold, noColour)
	default:
		return colorize(ll, colorBold, noColour)
	}
}
