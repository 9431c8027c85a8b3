package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrTransitionStatusCommandIsNotConstructed is returned when a zero-value command reaches a handler.
var ErrTransitionStatusCommandIsNotConstructed = errors.New(
	"TransitionStatusCommand must be created via NewTransitionStatusCommand constructor",
)

// TransitionStatusCommand moves an order or a shipment to a new status on behalf of actor.
// The status is checked against the entity's vocabulary when the command is handled,
// so an unknown status surfaces as ErrInvalidTransition rather than a constructor error.
//
// Example:
//
//	cmd, err := NewTransitionStatusCommand(kernel.EntityShipment, shipmentID, "in_transit", userID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type TransitionStatusCommand struct { //nolint:recvcheck //using for validation
	kind      kernel.EntityKind
	entityID  kernel.ID
	newStatus string
	actor     kernel.ID

	guard guard.ConstructorGuard
}

// NewTransitionStatusCommand validates identities only. actor may be zero for
// system-initiated changes.
func NewTransitionStatusCommand(
	kind kernel.EntityKind,
	entityID kernel.ID,
	newStatus string,
	actor kernel.ID,
) (TransitionStatusCommand, error) {
	var actorErr error
	if actor < 0 {
		actorErr = errs.NewValueIsInvalidError("actor")
	}

	if err := errors.Join(kind.Validate(), entityID.Validate(), actorErr); err != nil {
		return TransitionStatusCommand{}, err
	}

	return TransitionStatusCommand{
		kind:      kind,
		entityID:  entityID,
		newStatus: strings.TrimSpace(newStatus),
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStatusCommandIsNotConstructed)
}

// Kind returns which entity the command targets.
func (c TransitionStatusCommand) Kind() kernel.EntityKind { return c.kind }
func (c TransitionStatusCommand) EntityID() kernel.ID     { return c.entityID }
func (c TransitionStatusCommand) NewStatus() string       { return c.newStatus }
func (c TransitionStatusCommand) Actor() kernel.ID        { return c.actor }
