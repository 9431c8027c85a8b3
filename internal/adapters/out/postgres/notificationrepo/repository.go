package notificationrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements ports.NotificationRepository.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add saves a new notification record.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateReadState persists the read flag and read_at of n.
func (r *GormNotificationRepository) UpdateReadState(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Bytes()).
		Updates(map[string]any{
			"is_read": n.IsRead(),
			"read_at": n.ReadAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID())
	}
	return nil
}

// MarkAllRead only touches unread records in the principal's scope, so read
// times already recorded are kept.
func (r *GormNotificationRepository) MarkAllRead(
	ctx context.Context,
	principal kernel.Principal,
	at time.Time,
) (int64, error) {
	if principal.OrganizationID.IsZero() {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("organization_id = ?", int64(principal.OrganizationID)).
		Where("user_id IS NULL OR user_id = ?", int64(principal.UserID)).
		Where("is_read = ?", false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": at,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
