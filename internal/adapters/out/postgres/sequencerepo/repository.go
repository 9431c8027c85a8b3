// Package sequencerepo stores claimed document numbers in document_numbers.
package sequencerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/sequence"
	"logistics/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// GormSequenceRepository implements ports.SequenceRepository.
//
// It must be built on the pool, never on a unit-of-work transaction: a claim
// commits on its own so a caller that later rolls back leaves a gap instead
// of releasing the number to someone else.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// HighestIssued returns 0 for a family that has never issued a number.
func (r *GormSequenceRepository) HighestIssued(ctx context.Context, family sequence.Family) (int64, error) {
	var highest int64
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(seq), 0) FROM document_numbers WHERE family = ?`, family.String()).
		Scan(&highest).Error
	if err != nil {
		return 0, err
	}
	return highest, nil
}

// Claim inserts the number. A conflict on either unique key reports
// ports.ErrNumberAlreadyClaimed.
func (r *GormSequenceRepository) Claim(ctx context.Context, family sequence.Family, seq int64, number string) error {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO document_numbers (family, seq, number) VALUES (?, ?, ?) ON CONFLICT DO NOTHING`,
		family.String(), seq, number,
	)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ports.ErrNumberAlreadyClaimed
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNumberAlreadyClaimed
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
