package order_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		quoteID := kernel.ID(9)

		o, err := order.NewOrder(3, "ORD-00001", "Acme Retail", &quoteID, orderDate)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsZero())
		assert.Equal(t, kernel.ID(3), o.OrganizationID())
		assert.Equal(t, "ORD-00001", o.Number())
		assert.Equal(t, "Acme Retail", o.CustomerName())
		assert.Equal(t, order.Pending, o.Status())
		require.NotNil(t, o.QuoteID())
		assert.Equal(t, kernel.ID(9), *o.QuoteID())
		assert.Equal(t, orderDate, o.OrderDate())
	})

	t.Run("should trim display fields", func(t *testing.T) {
		o, err := order.NewOrder(3, " ORD-00002 ", "  Jane  ", nil, orderDate)

		require.NoError(t, err)
		assert.Equal(t, "ORD-00002", o.Number())
		assert.Equal(t, "Jane", o.CustomerName())
		assert.Nil(t, o.QuoteID())
	})

	testCases := []struct {
		name     string
		orgID    kernel.ID
		number   string
		customer string
		date     time.Time
		expected error
	}{
		{name: "zero organization", orgID: 0, number: "ORD-00001", customer: "A", date: orderDate, expected: errs.ErrValueIsInvalid},
		{name: "blank number", orgID: 1, number: "  ", customer: "A", date: orderDate, expected: errs.ErrValueIsRequired},
		{name: "blank customer", orgID: 1, number: "ORD-00001", customer: "", date: orderDate, expected: errs.ErrValueIsRequired},
		{name: "zero order date", orgID: 1, number: "ORD-00001", customer: "A", expected: errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			o, err := order.NewOrder(tc.orgID, tc.number, tc.customer, nil, tc.date)

			require.ErrorIs(t, err, tc.expected)
			assert.Nil(t, o)
		})
	}

	t.Run("should reject invalid quote reference", func(t *testing.T) {
		bad := kernel.ID(-1)

		_, err := order.NewOrder(1, "ORD-00001", "A", &bad, orderDate)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quote id")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore every field", func(t *testing.T) {
		o, err := order.RestoreOrder(11, 3, "ORD-00011", order.Fulfilled, nil, "Acme", orderDate)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(11), o.ID())
		assert.Equal(t, order.Fulfilled, o.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(11, 3, "ORD-00011", order.Unknown, nil, "Acme", orderDate)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero identity", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 3, "ORD-00011", order.Pending, nil, "Acme", orderDate)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	zero := &order.Order{}
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder(3, "ORD-00001", "Acme", nil, orderDate)
	require.NoError(t, err)

	require.Error(t, o.AssignID(0))
	require.NoError(t, o.AssignID(5))
	assert.Equal(t, kernel.ID(5), o.ID())
	require.ErrorIs(t, o.AssignID(6), order.ErrOrderIdentityIsSet)
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should return previous status", func(t *testing.T) {
		o, _ := order.RestoreOrder(1, 3, "ORD-00001", order.Pending, nil, "Acme", orderDate)

		old, err := o.ChangeStatus(order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, old)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should permit any move within the vocabulary", func(t *testing.T) {
		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				o, _ := order.RestoreOrder(1, 3, "ORD-00001", from, nil, "Acme", orderDate)

				old, err := o.ChangeStatus(to)

				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, from, old)
				assert.Equal(t, to, o.Status())
			}
		}
	})

	t.Run("should reject status outside the vocabulary", func(t *testing.T) {
		o, _ := order.RestoreOrder(1, 3, "ORD-00001", order.Processing, nil, "Acme", orderDate)

		_, err := o.ChangeStatus(order.Status(42))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Processing, o.Status())
	})
}

func TestOrder_QuoteIDIsCopied(t *testing.T) {
	quoteID := kernel.ID(4)
	o, _ := order.NewOrder(3, "ORD-00001", "Acme", &quoteID, orderDate)

	*o.QuoteID() = 99
	quoteID = 100

	assert.Equal(t, kernel.ID(4), *o.QuoteID())
}
