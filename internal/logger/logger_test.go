// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by the
// logger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	l.Info().Msg("hello")

	assert.Equal(t, "test-role", decodeEntry(t, &buf)["role"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ts-role")

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named
// "func" and holds a function name.
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)

	l.Info().Msg("caller")

	assert.Contains(t, decodeEntry(t, &buf)["func"], "TestNewLogger_CallerFieldName")
}

// TestNewClientLogger_Level verifies the level mapping, including the
// fallback to info.
func TestNewClientLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewClientLogger("client", tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

// TestWithLevel_FiltersBelowLevel verifies that entries under the level are
// dropped.
func TestWithLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "client").WithLevel("warn")

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_IsIndependent verifies that the child logger is a
// distinct instance that inherits the parent's fields.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

// TestWithSessionID verifies that the session field is attached to the
// child only.
func TestWithSessionID(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")
	child := parent.WithSessionID("abc-123")

	child.Info().Msg("with session")
	assert.Equal(t, "abc-123", decodeEntry(t, &buf)[SessionIDField])

	buf.Reset()
	parent.Info().Msg("without session")
	_, has := decodeEntry(t, &buf)[SessionIDField]
	assert.False(t, has)
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx-role").WithSessionID("ctx-session")
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("from context")

	assert.Equal(t, "ctx-session", decodeEntry(t, &buf)[SessionIDField])
}
