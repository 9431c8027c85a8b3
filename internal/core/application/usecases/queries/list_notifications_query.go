package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Page size bounds for notification listings.
const (
	DefaultNotificationsLimit = 20
	MaxNotificationsLimit     = 100
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
	// ErrPrincipalHasNoOrganization rejects listings for principals outside any
	// organization; such principals have no notifications.
	ErrPrincipalHasNoOrganization = errs.NewValueIsRequiredError("organization id")
)

// ListNotificationsQuery pages through the notifications a principal can see,
// newest first. A zero limit means DefaultNotificationsLimit.
//
// Example:
//
//	query, err := NewListNotificationsQuery(principal, true, 0, 0)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d unread\n", page.UnreadCount)
type ListNotificationsQuery struct {
	principal  kernel.Principal
	onlyUnread bool
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a listing request. limit must be within
// 1..MaxNotificationsLimit once defaulted and offset must not be negative.
func NewListNotificationsQuery(
	principal kernel.Principal,
	onlyUnread bool,
	limit, offset int,
) (ListNotificationsQuery, error) {
	if principal.OrganizationID.IsZero() {
		return ListNotificationsQuery{}, ErrPrincipalHasNoOrganization
	}
	if limit == 0 {
		limit = DefaultNotificationsLimit
	}
	if limit < 1 || limit > MaxNotificationsLimit {
		return ListNotificationsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotificationsLimit)
	}
	if offset < 0 {
		return ListNotificationsQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return ListNotificationsQuery{
		principal:  principal,
		onlyUnread: onlyUnread,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) Principal() kernel.Principal { return q.principal }
func (q ListNotificationsQuery) OnlyUnread() bool            { return q.onlyUnread }
func (q ListNotificationsQuery) Limit() int                  { return q.limit }
func (q ListNotificationsQuery) Offset() int                 { return q.offset }

// NotificationView is the read model of one notification record.
type NotificationView struct {
	ID        kernel.UUID
	UserID    *kernel.ID
	Category  string
	Type      string
	Priority  string
	Icon      string
	Message   string
	Link      string
	RelatedID kernel.ID
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

// ListNotificationsQueryResponse carries one page plus the unread total of the whole scope.
type ListNotificationsQueryResponse struct {
	Items       []NotificationView
	UnreadCount int64
}
