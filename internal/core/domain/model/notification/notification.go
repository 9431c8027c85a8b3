package notification

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned for a zero-value or nil notification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Content is what the policy decides to tell the user.
type Content struct {
	Category  Category
	Type      Type
	Priority  Priority
	Icon      string
	Message   string
	Link      string
	RelatedID kernel.ID
}

// Notification is a persisted message for an organization or one of its users.
type Notification struct {
	id             kernel.UUID
	organizationID kernel.ID
	userID         *kernel.ID
	content        Content
	read           bool
	readAt         *time.Time
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread record. userID nil means organization-wide.
func NewNotification(organizationID kernel.ID, userID *kernel.ID, content Content, now time.Time) (*Notification, error) {
	n := &Notification{
		id:        kernel.NewUUID(),
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setOrganizationID(organizationID),
		n.setUserID(userID),
		n.setContent(content),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification rebuilds a stored record. Used by repositories only.
func RestoreNotification(
	id kernel.UUID,
	organizationID kernel.ID,
	userID *kernel.ID,
	content Content,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		n.setOrganizationID(organizationID),
		n.setUserID(userID),
		n.setContent(content),
	); err != nil {
		return nil, err
	}
	n.id = id
	n.createdAt = createdAt
	if readAt != nil {
		at := *readAt
		n.read = true
		n.readAt = &at
	}

	return n, nil
}

// Validate ensures the notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID           { return n.id }
func (n *Notification) OrganizationID() kernel.ID { return n.organizationID }
func (n *Notification) Content() Content          { return n.content }
func (n *Notification) Category() Category        { return n.content.Category }
func (n *Notification) Type() Type                { return n.content.Type }
func (n *Notification) Priority() Priority        { return n.content.Priority }
func (n *Notification) Icon() string              { return n.content.Icon }
func (n *Notification) Message() string           { return n.content.Message }
func (n *Notification) Link() string              { return n.content.Link }
func (n *Notification) RelatedID() kernel.ID      { return n.content.RelatedID }
func (n *Notification) IsRead() bool              { return n.read }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }

// UserID returns nil for organization-wide records.
func (n *Notification) UserID() *kernel.ID {
	if n.userID == nil {
		return nil
	}
	return n.userID.Ptr()
}

// ReadAt returns a copy of the read time, nil while unread.
func (n *Notification) ReadAt() *time.Time {
	if n.readAt == nil {
		return nil
	}
	at := *n.readAt
	return &at
}

// VisibleTo reports whether p may list and mark this record.
func (n *Notification) VisibleTo(p kernel.Principal) bool {
	if p.OrganizationID.IsZero() || n.organizationID != p.OrganizationID {
		return false
	}
	return n.userID == nil || *n.userID == p.UserID
}

// MarkRead is idempotent: an already read record keeps its first read time.
func (n *Notification) MarkRead(at time.Time) {
	if n.read {
		return
	}
	n.read = true
	n.readAt = &at
}

// MarkUnread clears both the flag and the read time.
func (n *Notification) MarkUnread() {
	n.read = false
	n.readAt = nil
}

func (n *Notification) setOrganizationID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("organization id", err)
	}
	n.organizationID = id
	return nil
}

func (n *Notification) setUserID(userID *kernel.ID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	n.userID = userID.Ptr()
	return nil
}

func (n *Notification) setContent(c Content) error {
	c.Message = strings.TrimSpace(c.Message)

	var err error
	if c.Message == "" {
		err = errs.NewValueIsRequiredError("message")
	}
	if joined := errors.Join(err, c.Category.Validate(), c.Type.Validate(), c.Priority.Validate()); joined != nil {
		return joined
	}

	n.content = c
	return nil
}
