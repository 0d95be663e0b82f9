package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/scam-check/internal/config"
	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/corpus"
	"github.com/mikey/scam-check/internal/engine"
	"github.com/mikey/scam-check/internal/factory"
	"github.com/mikey/scam-check/internal/lexicon"
	"github.com/mikey/scam-check/internal/logging"
	"github.com/mikey/scam-check/internal/ports"
	"github.com/mikey/scam-check/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register lexicon
	if err := container.Provide(lexicon.Default); err != nil {
		return nil, err
	}

	// Register normalizer
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *utils.Normalizer {
		return utils.NewNormalizer(logger, cfg.GetInt("engine.max_input_size"))
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register record provider
	if err := container.Provide(func(f *factory.StoreFactory) (core.RecordProvider, error) {
		return f.CreateRecordProvider()
	}); err != nil {
		return nil, err
	}

	// Register corpus matcher (nil when corpus matching is disabled)
	if err := container.Provide(func(cfg *config.Config, provider core.RecordProvider, logger *zap.Logger) *corpus.Matcher {
		corpusCfg := cfg.GetCorpus()
		if !corpusCfg.Enabled {
			logger.Info("Corpus matching disabled")
			return nil
		}
		return corpus.NewMatcher(provider, logger, corpusCfg.SearchLimit, corpusCfg.MinRelevance)
	}); err != nil {
		return nil, err
	}

	// Register verdict cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.VerdictCache, error) {
		return f.CreateVerdictCache()
	}); err != nil {
		return nil, err
	}

	// Register check service
	if err := container.Provide(func(
		matcher *corpus.Matcher,
		cache core.VerdictCache,
		logger *zap.Logger,
		normalizer *utils.Normalizer,
		lex *lexicon.Set,
		cacheFactory *factory.CacheFactory,
	) (*engine.CheckService, error) {
		ttl, err := cacheFactory.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		return engine.NewCheckService(
			matcher,
			cache,
			logger,
			normalizer,
			lex,
			cacheFactory.IsCacheEnabled(),
			ttl,
		), nil
	}); err != nil {
		return nil, err
	}

	// Register email filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.EmailFilter, error) {
		return f.CreateEmailFilter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
