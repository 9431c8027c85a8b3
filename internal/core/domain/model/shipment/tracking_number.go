package shipment

import (
	"strings"

	"github.com/google/uuid"
)

// TrackingNumberPrefix starts every tracking number.
const TrackingNumberPrefix = "TRK-"

const trackingNumberLength = 12

// NewTrackingNumber returns a random TRK-XXXXXXXXXXXX reference. Uniqueness is
// enforced by the store; the 48 random bits make a collision practically absent.
func NewTrackingNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return TrackingNumberPrefix + strings.ToUpper(hex[:trackingNumberLength])
}
