package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", "json", &buf)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNew_TextFormatIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", "text", &buf)

	l.Info().Msg("hello")

	var m map[string]any
	assert.Error(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Contains(t, buf.String(), "hello")
}

func TestFromContext_AddsRunID(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", "json", &buf)

	ctx := WithRunID(context.Background(), "run-123")
	require.Equal(t, "run-123", RunID(ctx))

	l.FromContext(ctx).Info().Msg("tagged")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "run-123", m["run_id"])
}

func TestFromContext_WithoutRunID(t *testing.T) {
	l := Nop()
	assert.Same(t, l, l.FromContext(context.Background()))
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", "json", &buf).WithFields("file", "foods.csv", "dangling")

	l.Info().Msg("x")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "foods.csv", m["file"])
	_, ok := m["dangling"]
	assert.False(t, ok)
}

func TestFromContext_RunIDAttachedOnce(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithRunID(context.Background(), "run-123")

	l := New("info", "json", &buf).FromContext(ctx)
	l = l.WithFields("file", "foods.csv").FromContext(ctx)
	assert.Same(t, l, l.FromContext(ctx))

	l.Info().Msg("tagged")
	assert.Equal(t, 1, strings.Count(buf.String(), `"run_id"`))
}
