package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// EntityKind names the two mutable subjects whose status can change.
type EntityKind int

const (
	UnknownEntity EntityKind = iota
	EntityOrder
	EntityShipment
)

func getEntityKindStrings() map[EntityKind]string {
	return map[EntityKind]string{
		EntityOrder:    "order",
		EntityShipment: "shipment",
	}
}

// ParseEntityKind accepts "order" and "shipment".
func ParseEntityKind(s string) (EntityKind, error) {
	for kind, str := range getEntityKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownEntity, errs.NewValueIsInvalidErrorWithCause("entity kind", fmt.Errorf("%q is not a known entity kind", s))
}

func (k EntityKind) Validate() error {
	if _, ok := getEntityKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("entity kind", fmt.Errorf("%d is not a valid entity kind", k))
	}
	return nil
}

func (k EntityKind) String() string {
	if str, ok := getEntityKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
