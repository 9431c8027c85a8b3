package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Processing ──> Fulfilled ──> Shipped
//	   └────────────┴──────────────┴──> Cancelled
//
// The arrows show the usual flow. The aggregate itself accepts any move between
// members of the vocabulary.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Processing
	Fulfilled
	Cancelled
	Shipped
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Fulfilled:  "fulfilled",
		Cancelled:  "cancelled",
		Shipped:    "shipped",
	}
}

// Statuses lists the vocabulary in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, Fulfilled, Shipped, Cancelled}
}

// ParseStatus maps the persisted and wire form ("processing") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not an order status", s))
}

// Validate rejects Unknown and anything outside the vocabulary.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports Shipped and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}
