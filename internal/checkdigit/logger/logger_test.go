package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"off":     zerolog.Disabled,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"chatty":  zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", ServiceName: "checkdigit", Output: &buf})

	l.Debug().Str(FieldKind, "isbn10").Msg("validated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "checkdigit", entry[FieldService])
	assert.Equal(t, "isbn10", entry[FieldKind])
	assert.Equal(t, "validated", entry["message"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf})

	ctx := WithLogger(context.Background(), l)
	got := Ctx(ctx)
	got.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	nop := Ctx(context.Background())
	assert.Equal(t, zerolog.Disabled, nop.GetLevel())
}
