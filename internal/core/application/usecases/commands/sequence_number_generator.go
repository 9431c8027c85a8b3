package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/sequence"
	"logistics/internal/core/ports"
)

// DefaultSequenceMaxAttempts bounds the claim loop when no limit is configured.
const DefaultSequenceMaxAttempts = 25

// ErrSequenceContention is returned when every attempt lost its race. It is a
// server-side failure; the caller may retry the whole request.
var ErrSequenceContention = errors.New("document number could not be claimed: too many concurrent writers")

// SequenceNumberGenerator issues gap-tolerant, never-duplicated document numbers.
//
// Each attempt reads the highest issued value, formats the next candidate and
// claims it. A lost race surfaces as ports.ErrNumberAlreadyClaimed and the loop
// starts over from a fresh read.
type SequenceNumberGenerator struct {
	repo        ports.SequenceRepository
	maxAttempts int
	logger      *slog.Logger
}

// NewSequenceNumberGenerator creates a generator over repo. maxAttempts <= 0
// selects DefaultSequenceMaxAttempts. repo must not be bound to a caller's
// transaction, otherwise a rolled-back caller would release its number.
func NewSequenceNumberGenerator(
	repo ports.SequenceRepository,
	maxAttempts int,
	logger *slog.Logger,
) *SequenceNumberGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSequenceMaxAttempts
	}
	return &SequenceNumberGenerator{
		repo:        repo,
		maxAttempts: maxAttempts,
		logger:      logger.With("component", "SequenceNumberGenerator"),
	}
}

// Next implements NumberIssuer.
func (g *SequenceNumberGenerator) Next(ctx context.Context, family sequence.Family) (string, error) {
	if err := family.Validate(); err != nil {
		return "", err
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		highest, err := g.repo.HighestIssued(ctx, family)
		if err != nil {
			return "", fmt.Errorf("read highest %s number: %w", family, err)
		}

		candidate := highest + 1
		number, err := family.Format(candidate)
		if err != nil {
			return "", err
		}

		err = g.repo.Claim(ctx, family, candidate, number)
		if err == nil {
			return number, nil
		}
		if !errors.Is(err, ports.ErrNumberAlreadyClaimed) {
			return "", fmt.Errorf("claim %s: %w", number, err)
		}

		g.logger.DebugContext(ctx, "number already claimed, retrying",
			"family", family.String(), "number", number, "attempt", attempt)
	}

	g.logger.WarnContext(ctx, "giving up on document number",
		"family", family.String(), "attempts", g.maxAttempts)
	return "", fmt.Errorf("%w: family %s after %d attempts", ErrSequenceContention, family, g.maxAttempts)
}
