package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler reads notifications straight from the
// notifications table. User-scoped records are only visible to that user;
// organization-wide records are visible to every member.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler reading through db.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle returns the requested page and the unread count of the whole visible
// scope, not just of the page.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	principal := query.Principal()
	orgID := int64(principal.OrganizationID)
	userID := int64(principal.UserID)

	var unread int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE organization_id = ? AND (user_id IS NULL OR user_id = ?)
			AND is_read = FALSE
	`, orgID, userID).Row().Scan(&unread)
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			category,
			type,
			priority,
			icon,
			message,
			link,
			related_id,
			is_read,
			read_at,
			created_at
		FROM notifications
		WHERE organization_id = ? AND (user_id IS NULL OR user_id = ?)
			AND (? = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, orgID, userID, query.OnlyUnread(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]NotificationView, 0, query.Limit())
	for rows.Next() {
		var (
			view      NotificationView
			id        uuid.UUID
			ownerID   sql.NullInt64
			relatedID int64
			readAt    sql.NullTime
		)

		err = rows.Scan(
			&id,
			&ownerID,
			&view.Category,
			&view.Type,
			&view.Priority,
			&view.Icon,
			&view.Message,
			&view.Link,
			&relatedID,
			&view.IsRead,
			&readAt,
			&view.CreatedAt,
		)
		if err != nil {
			return ListNotificationsQueryResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListNotificationsQueryResponse{}, idErr
		}
		view.ID = notificationID
		view.RelatedID = kernel.ID(relatedID)
		if ownerID.Valid {
			view.UserID = kernel.ID(ownerID.Int64).Ptr()
		}
		if readAt.Valid {
			at := readAt.Time.UTC()
			view.ReadAt = &at
		}
		view.CreatedAt = view.CreatedAt.UTC()

		items = append(items, view)
	}

	if err = rows.Err(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	return ListNotificationsQueryResponse{Items: items, UnreadCount: unread}, nil
}

