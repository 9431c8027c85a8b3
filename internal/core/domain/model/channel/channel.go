// Package channel names the real-time broadcast topics subscribers join.
//
// Names follow the grammar <kind>.<id>, for example organization.3 or
// shipment.7. Subscription handshakes may send the name with a "private-"
// prefix; Parse accepts both forms.
package channel

import (
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// PrivatePrefix is prepended by socket clients to channels that need authorization.
const PrivatePrefix = "private-"

// Kind is the subject a channel is about.
type Kind int

const (
	UnknownKind Kind = iota
	Organization
	Order
	Shipment
	Driver
	Warehouse
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Organization: "organization",
		Order:        "order",
		Shipment:     "shipment",
		Driver:       "driver",
		Warehouse:    "warehouse",
	}
}

func Kinds() []Kind {
	return []Kind{Organization, Order, Shipment, Driver, Warehouse}
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Channel is a parsed channel name.
type Channel struct {
	Kind Kind
	ID   kernel.ID
}

func New(kind Kind, id kernel.ID) Channel {
	return Channel{Kind: kind, ID: id}
}

func ForOrganization(id kernel.ID) Channel { return New(Organization, id) }
func ForOrder(id kernel.ID) Channel        { return New(Order, id) }
func ForShipment(id kernel.ID) Channel     { return New(Shipment, id) }
func ForDriver(userID kernel.ID) Channel   { return New(Driver, userID) }
func ForWarehouse(id kernel.ID) Channel    { return New(Warehouse, id) }

// Parse turns "shipment.7" or "private-shipment.7" into a Channel.
func Parse(name string) (Channel, error) {
	name = strings.TrimPrefix(name, PrivatePrefix)

	kindPart, idPart, ok := strings.Cut(name, ".")
	if !ok {
		return Channel{}, errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q has no <kind>.<id> form", name))
	}

	kind := UnknownKind
	for k, s := range getKindStrings() {
		if s == kindPart {
			kind = k
			break
		}
	}
	if kind == UnknownKind {
		return Channel{}, errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not a channel kind", kindPart))
	}

	id, err := kernel.ParseID(idPart)
	if err != nil {
		return Channel{}, errs.NewValueIsInvalidErrorWithCause("channel", err)
	}
	// Only the canonical decimal form names a channel: no sign, no leading zeros.
	if id.String() != idPart {
		return Channel{}, errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not a canonical id", idPart))
	}

	return New(kind, id), nil
}

func (c Channel) Validate() error {
	if _, ok := getKindStrings()[c.Kind]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%d is not a channel kind", c.Kind))
	}
	return c.ID.Validate()
}

// Name renders the channel as <kind>.<id>.
func (c Channel) Name() string {
	return c.Kind.String() + "." + c.ID.String()
}

func (c Channel) String() string {
	return c.Name()
}
