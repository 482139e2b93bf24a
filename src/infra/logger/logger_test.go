package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokesapi/src/infra/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	WithComponent(log, "repo").Info("joke created", "joke_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "joke created", entry["msg"])
	assert.Equal(t, "repo", entry["component"])
	assert.Equal(t, "abc", entry["joke_id"])
}

func TestNewPlain(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "warn", Format: "plain"}, &buf)

	log.Info("dropped")
	WithRequestID(log, "req-1").Warn("store slow", "op", "find")

	assert.Equal(t, "store slow request_id=req-1 op=find\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestPlainGroupPrefixesKeys(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	log.With("request_id", "req-2").WithGroup("store").With("driver", "mongo").Info("query", "op", "find")

	assert.Equal(t, "query request_id=req-2 store.driver=mongo store.op=find\n", buf.String())
}
