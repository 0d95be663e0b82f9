// Package engine wires the analyzers, the corpus matcher and the
// verdict cache into the single CheckInput entry point.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/scam-check/internal/analyzer"
	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/corpus"
	"github.com/mikey/scam-check/internal/lexicon"
	"github.com/mikey/scam-check/internal/utils"
)

// CheckService is the core detection service. All methods are safe for
// concurrent use; the service holds no mutable state beyond the static
// lexicon and the injected collaborators.
type CheckService struct {
	matcher      *corpus.Matcher
	cache        core.VerdictCache
	logger       *zap.Logger
	normalizer   *utils.Normalizer
	lex          *lexicon.Set
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewCheckService creates a check service. matcher may be nil when no
// record provider is configured; cache may be nil when caching is
// disabled.
func NewCheckService(
	matcher *corpus.Matcher,
	cache core.VerdictCache,
	logger *zap.Logger,
	normalizer *utils.Normalizer,
	lex *lexicon.Set,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *CheckService {
	return &CheckService{
		matcher:      matcher,
		cache:        cache,
		logger:       logger,
		normalizer:   normalizer,
		lex:          lex,
		cacheEnabled: cacheEnabled && cache != nil,
		cacheTTL:     cacheTTL,
	}
}

// CheckInput analyzes a raw input string and returns a verdict. The
// corpus is consulted first; on a hit the stored record's category is
// returned without running the heuristics. Never fails: unrecognized
// input is scored as free text and a quiet input comes back safe.
func (s *CheckService) CheckInput(ctx context.Context, raw string) *core.RiskVerdict {
	input := s.normalizer.Normalize(raw)

	if s.cacheEnabled {
		if verdict, err := s.cache.Get(ctx, input); err == nil {
			s.logger.Debug("Verdict cache hit", zap.String("input", input))
			cached := *verdict
			cached.Source = "cache"
			return &cached
		}
	}

	inputType := analyzer.ClassifyInput(input)
	s.logger.Debug("Classified input",
		zap.String("input", input),
		zap.String("type", string(inputType)))

	if s.matcher != nil {
		if rec, relevance := s.matcher.BestMatch(ctx, input); rec != nil {
			verdict := s.verdictFromRecord(rec, relevance)
			s.storeVerdict(ctx, input, verdict)
			return verdict
		}
	}

	var breakdown core.ScoreBreakdown
	switch inputType {
	case core.InputEmail:
		if _, domain, ok := strings.Cut(input, "@"); ok {
			breakdown.Merge(analyzer.AnalyzeDomain(domain, s.lex))
		}
		breakdown.Merge(analyzer.AnalyzeContent(input, s.lex))
	case core.InputURL:
		breakdown.Merge(analyzer.AnalyzeDomain(analyzer.ExtractHost(input), s.lex))
		breakdown.Merge(analyzer.AnalyzeURLStructure(input))
		breakdown.Merge(analyzer.AnalyzeURLKeywords(input, s.lex))
	case core.InputPhone:
		breakdown.Merge(analyzer.AnalyzePhone(input, s.lex))
	default:
		// Unrecognized shapes are scored as free text, best effort.
		breakdown.Merge(analyzer.AnalyzeContent(input, s.lex))
	}

	verdict := analyzer.Aggregate(breakdown)
	s.logger.Info("Heuristic verdict",
		zap.String("type", string(inputType)),
		zap.Int("score", verdict.Score),
		zap.String("level", string(verdict.Level)))
	s.storeVerdict(ctx, input, verdict)
	return verdict
}

// CheckEmail scores a full inbound message: the sender's domain plus
// the subject and body as free text. Used by the SMTP filter surface.
func (s *CheckService) CheckEmail(ctx context.Context, from, subject, body string) *core.RiskVerdict {
	var breakdown core.ScoreBreakdown
	if _, domain, ok := strings.Cut(from, "@"); ok {
		breakdown.Merge(analyzer.AnalyzeDomain(domain, s.lex))
	}
	breakdown.Merge(analyzer.AnalyzeContent(subject+"\n"+body, s.lex))
	return analyzer.Aggregate(breakdown)
}

// ClassifyRecord labels one stored record with its coarse category.
func (s *CheckService) ClassifyRecord(rec *core.EmailRecord) core.Category {
	return analyzer.ClassifyRecord(rec, s.lex)
}

// CategoryStats pages through the record provider and tallies the
// category of every stored email. pageLimit bounds each fetch.
func (s *CheckService) CategoryStats(ctx context.Context, provider core.RecordProvider, pageLimit int) (map[core.Category]int, error) {
	if pageLimit <= 0 {
		pageLimit = 50
	}
	stats := map[core.Category]int{
		core.CategorySafe:     0,
		core.CategorySuspect:  0,
		core.CategorySpam:     0,
		core.CategoryPhishing: 0,
	}
	for page := 1; ; page++ {
		records, err := provider.FetchRecords(ctx, page, pageLimit)
		if err != nil {
			return stats, fmt.Errorf("failed to fetch records page %d: %w", page, err)
		}
		for i := range records {
			stats[analyzer.ClassifyRecord(&records[i], s.lex)]++
		}
		if len(records) < pageLimit {
			return stats, nil
		}
	}
}

func (s *CheckService) verdictFromRecord(rec *core.EmailRecord, relevance float64) *core.RiskVerdict {
	category := analyzer.ClassifyRecord(rec, s.lex)
	indicators := []string{
		fmt.Sprintf("matched stored email %q (relevance %d%%)", rec.Title, int(relevance*100)),
		fmt.Sprintf("stored email classified as %s", category),
	}
	s.logger.Info("Corpus verdict",
		zap.Int64("record_id", rec.ID),
		zap.String("category", string(category)),
		zap.Float64("relevance", relevance))
	return &core.RiskVerdict{
		Level:      core.RiskLevel(category),
		Score:      analyzer.CategoryScore(category),
		Message:    analyzer.CategoryMessage(category),
		Indicators: indicators,
		CheckedAt:  time.Now(),
		Source:     "corpus",
		Matched:    rec,
		Relevance:  relevance,
	}
}

func (s *CheckService) storeVerdict(ctx context.Context, input string, verdict *core.RiskVerdict) {
	if !s.cacheEnabled {
		return
	}
	if err := s.cache.Set(ctx, input, verdict, s.cacheTTL); err != nil {
		s.logger.Error("Failed to update verdict cache", zap.Error(err))
	}
}
