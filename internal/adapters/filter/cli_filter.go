package filter

import (
	"context"
	"fmt"
	"time"

	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/engine"
	"go.uber.org/zap"
)

// CliFilter implements a command-line interface for scam checks
type CliFilter struct {
	service *engine.CheckService
	logger  *zap.Logger
	verbose bool
}

// NewCliFilter creates a new CLI filter
func NewCliFilter(service *engine.CheckService, logger *zap.Logger, verbose bool) (*CliFilter, error) {
	return &CliFilter{
		service: service,
		logger:  logger,
		verbose: verbose,
	}, nil
}

// ProcessEmail scores an email and displays the results
func (f *CliFilter) ProcessEmail(ctx context.Context, email *core.InboundEmail) (*core.RiskVerdict, error) {
	f.logger.Debug("Processing email", zap.String("sender", email.From))

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", email.From)
	fmt.Printf("To: %s\n", email.To)
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("Body length: %d bytes\n", len(email.Body))

	// Print body preview if verbose
	if f.verbose {
		preview := email.Body
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		fmt.Printf("\nBody preview:\n%s\n", preview)
	}

	fmt.Printf("\n")

	fmt.Printf("=== Analysis ===\n")
	startTime := time.Now()
	verdict := f.service.CheckEmail(ctx, email.From, email.Subject, email.Body)
	duration := time.Since(startTime)

	PrintVerdict(verdict, duration)

	return verdict, nil
}

// PrintVerdict writes a verdict report to stdout
func PrintVerdict(verdict *core.RiskVerdict, duration time.Duration) {
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Risk level: %s\n", verdict.Level)
	fmt.Printf("Risk score: %d\n", verdict.Score)
	fmt.Printf("Message: %s\n", verdict.Message)
	if len(verdict.Indicators) > 0 {
		fmt.Printf("Indicators:\n")
		for _, indicator := range verdict.Indicators {
			fmt.Printf("  - %s\n", indicator)
		}
	}
	if verdict.Matched != nil {
		fmt.Printf("Matched record: %q (relevance %.0f%%)\n", verdict.Matched.Title, verdict.Relevance*100)
	}
	fmt.Printf("Source: %s\n", verdict.Source)
	fmt.Printf("Processing time: %v\n", duration)
}

// Start is a no-op for the CLI filter
func (f *CliFilter) Start() error {
	return nil
}

// Stop is a no-op for the CLI filter
func (f *CliFilter) Stop() error {
	return nil
}
