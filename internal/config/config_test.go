package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultConfig() *Config {
	return NewFromViper(NewEmptyViper())
}

func TestDefaults(t *testing.T) {
	cfg := newDefaultConfig()

	assert.Equal(t, "mysql", cfg.GetString("store.type"))
	assert.Equal(t, "incoming_emails", cfg.GetString("store.table"))
	assert.True(t, cfg.GetBool("corpus.enabled"))
	assert.Equal(t, 20, cfg.GetInt("corpus.search_limit"))
	assert.InDelta(t, 0.3, cfg.GetFloat64("corpus.min_relevance"), 1e-9)
	assert.Equal(t, 65536, cfg.GetInt("engine.max_input_size"))
	assert.Equal(t, "smtp", cfg.GetString("server.filter_type"))
	assert.False(t, cfg.GetBool("server.block_enabled"))
}

func TestGetDuration(t *testing.T) {
	cfg := newDefaultConfig()

	ttl, err := cfg.GetDuration("cache.ttl")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)

	freq, err := cfg.GetDuration("cache.cleanup_frequency")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, freq)
}

func TestGetStore(t *testing.T) {
	v := NewEmptyViper()
	v.Set("store.type", "sqlite")
	v.Set("store.sqlite_path", "/tmp/corpus.db")
	cfg := NewFromViper(v)

	storeCfg := cfg.GetStore()
	assert.Equal(t, "sqlite", storeCfg.Type)
	assert.Equal(t, "/tmp/corpus.db", storeCfg.SQLitePath)
	assert.Equal(t, "incoming_emails", storeCfg.Table)
}

func TestGetCorpus(t *testing.T) {
	v := NewEmptyViper()
	v.Set("corpus.enabled", false)
	v.Set("corpus.min_relevance", 0.5)
	cfg := NewFromViper(v)

	corpusCfg := cfg.GetCorpus()
	assert.False(t, corpusCfg.Enabled)
	assert.InDelta(t, 0.5, corpusCfg.MinRelevance, 1e-9)
	assert.Equal(t, 20, corpusCfg.SearchLimit)
}

func TestGetServer(t *testing.T) {
	cfg := newDefaultConfig()

	serverCfg := cfg.GetServer()
	assert.Equal(t, "0.0.0.0:10025", serverCfg.ListenAddress)
	assert.Equal(t, "critical", serverCfg.BlockLevel)
	assert.Equal(t, "X-Scam-Level", serverCfg.LevelHeader)
	assert.Equal(t, "X-Scam-Score", serverCfg.ScoreHeader)
	assert.Equal(t, "X-Scam-Reason", serverCfg.ReasonHeader)
	assert.Equal(t, 10026, serverCfg.RelayPort)
	assert.True(t, serverCfg.RelayEnabled)
}
