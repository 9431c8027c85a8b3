package kernel

// Principal is the identity a caller or a real-time subscriber acts as.
// Either part may be zero when the gateway did not supply it.
type Principal struct {
	UserID         ID
	OrganizationID ID
}

// NewPrincipal creates a principal; zero parts are allowed.
func NewPrincipal(userID, organizationID ID) Principal {
	return Principal{UserID: userID, OrganizationID: organizationID}
}

// IsAnonymous reports a principal without any identity.
func (p Principal) IsAnonymous() bool {
	return p.UserID.IsZero() && p.OrganizationID.IsZero()
}
