// Package notificationrepo persists notification records.
package notificationrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO maps the notifications table.
type NotificationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID int64
	UserID         *int64
	Category       string
	Type           string
	Priority       string
	Icon           string
	Message        string
	Link           string
	RelatedID      int64
	IsRead         bool
	ReadAt         *time.Time
	CreatedAt      time.Time
}

// TableName returns the table name for GORM.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	var userID *int64
	if id := n.UserID(); id != nil {
		raw := int64(*id)
		userID = &raw
	}

	return NotificationDTO{
		ID:             n.ID().Bytes(),
		OrganizationID: int64(n.OrganizationID()),
		UserID:         userID,
		Category:       n.Category().String(),
		Type:           n.Type().String(),
		Priority:       n.Priority().String(),
		Icon:           n.Icon(),
		Message:        n.Message(),
		Link:           n.Link(),
		RelatedID:      int64(n.RelatedID()),
		IsRead:         n.IsRead(),
		ReadAt:         n.ReadAt(),
		CreatedAt:      n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := notification.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	typ, err := notification.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	priority, err := notification.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	var userID *kernel.ID
	if dto.UserID != nil {
		userID = kernel.ID(*dto.UserID).Ptr()
	}

	readAt := dto.ReadAt
	if dto.IsRead && readAt == nil {
		at := dto.CreatedAt
		readAt = &at
	}
	if !dto.IsRead {
		readAt = nil
	}

	return notification.RestoreNotification(id, kernel.ID(dto.OrganizationID), userID, notification.Content{
		Category:  category,
		Type:      typ,
		Priority:  priority,
		Icon:      dto.Icon,
		Message:   dto.Message,
		Link:      dto.Link,
		RelatedID: kernel.ID(dto.RelatedID),
	}, readAt, dto.CreatedAt)
}
