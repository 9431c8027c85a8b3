package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAuthorizeChannelQueryIsNotConstructed = errors.New(
	"AuthorizeChannelQuery must be created via NewAuthorizeChannelQuery constructor",
)

// AuthorizeChannelQuery asks whether a principal may subscribe to a channel.
// The name is kept raw; parsing failures are a denial, not an error.
type AuthorizeChannelQuery struct {
	principal   kernel.Principal
	channelName string

	guard guard.ConstructorGuard
}

// NewAuthorizeChannelQuery never fails; an unparsable name is denied by the handler.
func NewAuthorizeChannelQuery(principal kernel.Principal, channelName string) AuthorizeChannelQuery {
	return AuthorizeChannelQuery{
		principal:   principal,
		channelName: channelName,
		guard:       guard.NewConstructorGuard(),
	}
}

func (q AuthorizeChannelQuery) Validate() error {
	return q.guard.Validate(ErrAuthorizeChannelQueryIsNotConstructed)
}

func (q AuthorizeChannelQuery) Principal() kernel.Principal { return q.principal }
func (q AuthorizeChannelQuery) ChannelName() string         { return q.channelName }
