package ports

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/sequence"
)

// ErrNumberAlreadyClaimed reports that another writer claimed the candidate first.
var ErrNumberAlreadyClaimed = errors.New("document number already claimed")

// SequenceRepository stores issued document numbers. Claims are independent of
// any caller transaction.
type SequenceRepository interface {
	// HighestIssued returns 0 when nothing was issued for the family yet.
	HighestIssued(ctx context.Context, family sequence.Family) (int64, error)

	// Claim records number as issued, or returns ErrNumberAlreadyClaimed.
	Claim(ctx context.Context, family sequence.Family, seq int64, number string) error
}
