package model

// Role controls which price tiers a caller may see. Unauthenticated callers
// are guests and only see retail pricing.
type Role string

const (
	// RoleGuest sees retail prices only.
	RoleGuest Role = "guest"
	// RoleAdmin additionally sees channel prices and may change the catalog.
	RoleAdmin Role = "admin"
	// RoleZWZ is the owner role and additionally sees Nagqu cost prices.
	RoleZWZ Role = "zwz"
)

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleAdmin, RoleZWZ:
		return true
	}
	return false
}

// ShowNagqu reports whether the role may see Nagqu cost prices.
func (r Role) ShowNagqu() bool {
	return r == RoleZWZ
}

// ShowChannel reports whether the role may see channel prices.
func (r Role) ShowChannel() bool {
	return r == RoleAdmin || r == RoleZWZ
}

// CanConfigure reports whether the role may replace the catalog.
func (r Role) CanConfigure() bool {
	return r == RoleAdmin || r == RoleZWZ
}
