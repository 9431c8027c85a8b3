package tracking_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckpoint(t *testing.T) {
	t.Run("should prepare an unappended checkpoint", func(t *testing.T) {
		geo, _ := kernel.NewGeoPoint(51.34, 12.37)

		c, err := tracking.NewCheckpoint(7, " Leipzig ", shipment.InTransit, " scanned ", &geo)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		require.NoError(t, c.ID().Validate())
		assert.False(t, c.IsAppended())
		assert.Equal(t, kernel.ID(7), c.ShipmentID())
		assert.Equal(t, "Leipzig", c.Location())
		assert.Equal(t, "scanned", c.Detail())
		assert.Equal(t, shipment.InTransit, c.Status())
		require.NotNil(t, c.Geo())
		assert.InDelta(t, 51.34, c.Geo().Latitude(), 1e-9)
		assert.True(t, c.RecordedAt().IsZero())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		c, err := tracking.NewCheckpoint(0, "", shipment.Unknown, "", nil)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "shipment id")
		assert.Contains(t, err.Error(), "location")
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject zero-value geo point", func(t *testing.T) {
		_, err := tracking.NewCheckpoint(7, "Leipzig", shipment.InTransit, "", &kernel.GeoPoint{})

		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestForShipment(t *testing.T) {
	s, err := shipment.RestoreShipment(7, 3, "TRK-1", shipment.Delivered, "Jane",
		shipment.Route{Origin: "Berlin", Destination: "Hamburg"}, "Hamburg North", nil, nil)
	require.NoError(t, err)

	c, err := tracking.ForShipment(s, "", nil)

	require.NoError(t, err)
	assert.Equal(t, "Hamburg", c.Location())
	assert.Equal(t, shipment.Delivered, c.Status())
	assert.Nil(t, c.Geo())
}

func TestRestoreCheckpoint(t *testing.T) {
	id := kernel.NewUUID()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should restore stored checkpoint", func(t *testing.T) {
		c, err := tracking.RestoreCheckpoint(id, 15, 7, "Leipzig", shipment.InTransit, "", nil, at)

		require.NoError(t, err)
		assert.True(t, c.IsAppended())
		assert.Equal(t, int64(15), c.Sequence())
		assert.Equal(t, at, c.RecordedAt())
		assert.True(t, id.IsEqual(c.ID()))
	})

	t.Run("should require store assigned fields", func(t *testing.T) {
		_, err := tracking.RestoreCheckpoint(id, 0, 7, "Leipzig", shipment.InTransit, "", nil, at)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = tracking.RestoreCheckpoint(id, 1, 7, "Leipzig", shipment.InTransit, "", nil, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCheckpoint_GeoIsCopied(t *testing.T) {
	geo, _ := kernel.NewGeoPoint(1, 2)
	c, err := tracking.NewCheckpoint(7, "Leipzig", shipment.InTransit, "", &geo)
	require.NoError(t, err)

	geo, _ = kernel.NewGeoPoint(3, 4)

	assert.InDelta(t, 1.0, c.Geo().Latitude(), 1e-9)
}
