package queries

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/model/channel"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type channelRule func(ctx context.Context, principal kernel.Principal, id kernel.ID) (bool, error)

// AuthorizeChannelQueryHandler decides channel subscriptions. Every path that
// cannot prove membership denies.
type AuthorizeChannelQueryHandler struct {
	rules  map[channel.Kind]channelRule
	logger *slog.Logger
}

// NewAuthorizeChannelQueryHandler creates a handler that resolves entity ownership
// through owners. Organization and driver channels need no lookup.
func NewAuthorizeChannelQueryHandler(owners ports.OwnershipReader, logger *slog.Logger) AuthorizeChannelQueryHandler {
	sameOrganization := func(resolve func(context.Context, kernel.ID) (kernel.ID, error)) channelRule {
		return func(ctx context.Context, principal kernel.Principal, id kernel.ID) (bool, error) {
			if principal.OrganizationID.IsZero() {
				return false, nil
			}
			orgID, err := resolve(ctx, id)
			if err != nil {
				return false, err
			}
			return orgID == principal.OrganizationID, nil
		}
	}

	return AuthorizeChannelQueryHandler{
		rules: map[channel.Kind]channelRule{
			channel.Organization: func(_ context.Context, principal kernel.Principal, id kernel.ID) (bool, error) {
				return !principal.OrganizationID.IsZero() && id == principal.OrganizationID, nil
			},
			channel.Order:     sameOrganization(owners.OrderOrganization),
			channel.Shipment:  sameOrganization(owners.ShipmentOrganization),
			channel.Warehouse: sameOrganization(owners.WarehouseOrganization),
			channel.Driver: func(_ context.Context, principal kernel.Principal, id kernel.ID) (bool, error) {
				return !principal.UserID.IsZero() && id == principal.UserID, nil
			},
		},
		logger: logger.With("component", "channel-authorizer"),
	}
}

// Handle only returns an error for a query not built by its constructor.
func (h AuthorizeChannelQueryHandler) Handle(ctx context.Context, query AuthorizeChannelQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	principal := query.Principal()
	if principal.IsAnonymous() {
		return false, nil
	}

	ch, err := channel.Parse(query.ChannelName())
	if err != nil {
		h.logger.DebugContext(ctx, "channel name rejected", "channel", query.ChannelName(), "error", err)
		return false, nil
	}

	rule, ok := h.rules[ch.Kind]
	if !ok {
		return false, nil
	}

	allowed, err := rule(ctx, principal, ch.ID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "failed to resolve channel owner", "channel", ch.Name(), "error", err)
		}
		return false, nil
	}

	return allowed, nil
}
