package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

// ── constructors ──────────────────────────────────────────────────────────────

func TestNewWriterLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "catalogctl")

	l.Warn().Str("collection", "products").Msg("request failed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "catalogctl", entry["role"])
	assert.Equal(t, "products", entry["collection"])
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewWriterLogger_EntryShape")
}

func TestNewLogger_SetsGlobals(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

// ── With ──────────────────────────────────────────────────────────────────────

func TestWith_AddsFieldToChildOnly(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewWriterLogger(&parentBuf, "server")

	child := parent.With("user_id", int64(7))
	child.Logger = child.Output(&childBuf)
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	childEntry := decodeEntry(t, &childBuf)
	assert.Equal(t, float64(7), childEntry["user_id"])
	assert.Equal(t, "server", childEntry["role"])

	parentEntry := decodeEntry(t, &parentBuf)
	assert.NotContains(t, parentEntry, "user_id")
}

// ── context round trip ────────────────────────────────────────────────────────

func TestFromContext_WithoutLoggerIsUsable(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("default") })
}

func TestInto_FromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewWriterLogger(&buf, "server").With("trace_id", "abc").Into(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
}

func TestInto_FromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewWriterLogger(&buf, "server").With("trace_id", "req").Into(context.Background())
	r := httptest.NewRequest(http.MethodGet, "/api/products", nil).WithContext(ctx)

	FromRequest(r).Info().Msg("from request")

	assert.Equal(t, "req", decodeEntry(t, &buf)["trace_id"])
}
