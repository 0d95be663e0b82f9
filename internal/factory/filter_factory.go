package factory

import (
	"fmt"

	"github.com/mikey/scam-check/internal/adapters/filter"
	"github.com/mikey/scam-check/internal/config"
	"github.com/mikey/scam-check/internal/engine"
	"github.com/mikey/scam-check/internal/ports"
	"go.uber.org/zap"
)

// FilterFactory creates email filters based on configuration
type FilterFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *engine.CheckService
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(cfg *config.Config, logger *zap.Logger, service *engine.CheckService) *FilterFactory {
	return &FilterFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateEmailFilter creates an email filter based on the configuration
func (f *FilterFactory) CreateEmailFilter() (ports.EmailFilter, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.FilterType {
	case "smtp":
		return filter.NewSmtpFilter(
			f.service,
			f.logger,
			serverCfg.ListenAddress,
			serverCfg.BlockEnabled,
			serverCfg.BlockLevel,
			serverCfg.LevelHeader,
			serverCfg.ScoreHeader,
			serverCfg.ReasonHeader,
			serverCfg.RelayAddress,
			serverCfg.RelayPort,
			serverCfg.RelayEnabled,
			serverCfg.SubjectPrefix,
			serverCfg.ModifySubject,
		), nil
	case "cli":
		return filter.NewCliFilter(
			f.service,
			f.logger,
			f.cfg.GetBool("cli.verbose"),
		)
	default:
		return nil, fmt.Errorf("unsupported filter type: %s", serverCfg.FilterType)
	}
}
