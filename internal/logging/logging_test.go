package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, Level(-1))
	require.Equal(t, zerolog.InfoLevel, Level(0))
	require.Equal(t, zerolog.DebugLevel, Level(1))
	require.Equal(t, zerolog.TraceLevel, Level(2))
	require.Equal(t, zerolog.TraceLevel, Level(9))
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, 1)

	log.Debug().Int("matched", 4).Msg("solved")
	log.Trace().Msg("hidden")

	out := buf.String()
	require.Contains(t, out, "| DEBUG |")
	require.Contains(t, out, "solved")
	require.Contains(t, out, "matched=4")
	require.Contains(t, out, "logging_test.go:")
	require.NotContains(t, out, "hidden")
	require.NotContains(t, out, "\x1b[", "no escape codes when colour is off")
}

func TestNew_Colour(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, 0)
	log.Warn().Msg("fallback")
	require.Contains(t, buf.String(), "\x1b[31m| WARN  |\x1b[0m")
}

func TestFormatLevel(t *testing.T) {
	require.Equal(t, "| ERROR |", formatLevel(zerolog.LevelErrorValue, true))
	require.Equal(t, "| ??? |", formatLevel(nil, true))
	require.Equal(t, "|     7 |", formatLevel(7, true))
}
