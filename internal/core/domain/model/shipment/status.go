package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
type Status int

const (
	Unknown Status = iota
	Pending
	Processing
	InTransit
	OutForDelivery
	Delivered
	Failed
	Returned
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Processing:     "processing",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

func Statuses() []Status {
	return []Status{Pending, Processing, InTransit, OutForDelivery, Delivered, Failed, Returned, Cancelled}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a shipment status", s))
}

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

// IsTerminal reports Delivered, Returned and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}
