package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "portfolio")

	l.With("hero").Info().Str("mode", "titles").Msg("stream opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "portfolio", entry["role"])
	assert.Equal(t, "hero", entry["component"])
	assert.Equal(t, "titles", entry["mode"])
	assert.Equal(t, "stream opened", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "portfolio")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Warn().Msg("hello")

	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestNop_Silent(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("ignored") })
}
