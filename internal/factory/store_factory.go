package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/scam-check/internal/adapters/store"
	"github.com/mikey/scam-check/internal/config"
	"github.com/mikey/scam-check/internal/core"
	"go.uber.org/zap"
)

// StoreFactory creates record providers based on configuration
type StoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(cfg *config.Config, logger *zap.Logger) *StoreFactory {
	return &StoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateRecordProvider creates a record provider based on the configuration
func (f *StoreFactory) CreateRecordProvider() (core.RecordProvider, error) {
	storeCfg := f.cfg.GetStore()

	switch storeCfg.Type {
	case "mysql":
		return store.NewMySQLStore(storeCfg.MySQLDSN, storeCfg.Table, f.logger)
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(storeCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return store.NewSQLiteStore(storeCfg.SQLitePath, storeCfg.Table, f.logger)
	case "memory":
		return store.NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", storeCfg.Type)
	}
}

// IsCorpusEnabled returns whether corpus matching is enabled
func (f *StoreFactory) IsCorpusEnabled() bool {
	return f.cfg.GetBool("corpus.enabled")
}
