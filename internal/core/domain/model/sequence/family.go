// Package sequence defines the human-readable document numbers issued per
// family (ORD-00001, INV-000001, QTE-00001).
//
// The prefix and zero-padded width of each family are a durable contract:
// external consumers parse these numbers, so they never change. Numbers above
// the padded width simply grow longer.
package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/pkg/errs"
)

// Family is a document-number namespace.
type Family int

const (
	UnknownFamily Family = iota
	Order
	Invoice
	Quote
)

type format struct {
	name   string
	prefix string
	width  int
}

func getFormats() map[Family]format {
	return map[Family]format{
		Order:   {name: "order", prefix: "ORD-", width: 5},
		Invoice: {name: "invoice", prefix: "INV-", width: 6},
		Quote:   {name: "quote", prefix: "QTE-", width: 5},
	}
}

// Families returns every issuable family.
func Families() []Family {
	return []Family{Order, Invoice, Quote}
}

// ParseFamily accepts "order", "invoice" and "quote".
func ParseFamily(s string) (Family, error) {
	for family, f := range getFormats() {
		if f.name == s {
			return family, nil
		}
	}
	return UnknownFamily, errs.NewValueIsInvalidErrorWithCause("family", fmt.Errorf("%q is not a sequence family", s))
}

func (f Family) Validate() error {
	if _, ok := getFormats()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("family", fmt.Errorf("%d is not a valid family", f))
	}
	return nil
}

func (f Family) String() string {
	if ft, ok := getFormats()[f]; ok {
		return ft.name
	}
	return "unknown"
}

// Prefix returns the literal placed before the number, e.g. "INV-".
func (f Family) Prefix() string {
	return getFormats()[f].prefix
}

// Width returns the minimum number of digits; longer numbers are not truncated.
func (f Family) Width() int {
	return getFormats()[f].width
}

// Format renders n, which must be positive, e.g. Order.Format(10) == "ORD-00010".
func (f Family) Format(n int64) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	if n <= 0 {
		return "", errs.NewValueIsOutOfRangeError("sequence", n, 1, "unbounded")
	}
	return fmt.Sprintf("%s%0*d", f.Prefix(), f.Width(), n), nil
}

// Parse reads back the numeric part of a number issued for f.
func (f Family) Parse(number string) (int64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	digits, ok := strings.CutPrefix(number, f.Prefix())
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q does not start with %s", number, f.Prefix()))
	}
	if len(digits) < f.Width() || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%q is not %d or more digits", digits, f.Width()))
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q is not a positive sequence", digits))
	}
	return n, nil
}
