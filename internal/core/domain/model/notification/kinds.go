package notification

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Category groups notifications by originating subject.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryOrder
	CategoryShipment
	CategoryOther
)

// Type is the severity shown to the user.
type Type int

const (
	TypeUnknown Type = iota
	TypeInfo
	TypeSuccess
	TypeWarning
)

type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var (
	categoryStrings = map[Category]string{
		CategoryOrder:    "order",
		CategoryShipment: "shipment",
		CategoryOther:    "other",
	}
	typeStrings = map[Type]string{
		TypeInfo:    "info",
		TypeSuccess: "success",
		TypeWarning: "warning",
	}
	priorityStrings = map[Priority]string{
		PriorityLow:    "low",
		PriorityMedium: "medium",
		PriorityHigh:   "high",
	}
)

func (c Category) String() string { return stringOf(categoryStrings, c) }
func (t Type) String() string     { return stringOf(typeStrings, t) }
func (p Priority) String() string { return stringOf(priorityStrings, p) }

func (c Category) Validate() error { return validate(categoryStrings, c, "category") }
func (t Type) Validate() error     { return validate(typeStrings, t, "type") }
func (p Priority) Validate() error { return validate(priorityStrings, p, "priority") }

func ParseCategory(s string) (Category, error) { return parse(categoryStrings, s, "category") }
func ParseType(s string) (Type, error)         { return parse(typeStrings, s, "type") }
func ParsePriority(s string) (Priority, error) { return parse(priorityStrings, s, "priority") }

func stringOf[K comparable](table map[K]string, k K) string {
	if s, ok := table[k]; ok {
		return s
	}
	return "unknown"
}

func validate[K comparable](table map[K]string, k K, name string) error {
	if _, ok := table[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not a valid %s", any(k), name))
	}
	return nil
}

func parse[K comparable](table map[K]string, s, name string) (K, error) {
	for k, str := range table {
		if str == s {
			return k, nil
		}
	}
	var zero K
	return zero, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not a valid %s", s, name))
}
