package kernel

import (
	"fmt"
	"strconv"

	"logistics/internal/pkg/errs"
)

// ID is the identity of a persisted business entity (organization, user, order,
// shipment, warehouse). Identities are assigned by the database and start at 1,
// so the zero value means "absent".
type ID int64

// ParseID reads an ID from its decimal form, as found in URLs and channel names.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	id := ID(n)
	if err = id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports zero and negative identities.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identity", int64(id)))
	}
	return nil
}

// IsZero reports whether id is unset.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Ptr returns a pointer to a copy of id, handy for optional references.
func (id ID) Ptr() *ID {
	return &id
}
