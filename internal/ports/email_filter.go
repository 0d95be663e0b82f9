package ports

import (
	"context"

	"github.com/mikey/scam-check/internal/core"
)

// EmailFilter defines the interface for inbound email filtering
type EmailFilter interface {
	// ProcessEmail scores an email and returns the verdict
	ProcessEmail(ctx context.Context, email *core.InboundEmail) (*core.RiskVerdict, error)

	// Start starts the email filter service
	Start() error

	// Stop stops the email filter service
	Stop() error
}
