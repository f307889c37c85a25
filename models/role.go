package models

// Role is the authorization tag assigned to a user. The set of valid roles is
// closed: values outside the registry below are rejected at the boundary
// instead of being stored as free-form strings.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	// Customers may only inspect their own deliveries.
	RoleCustomer Role = "customer"

	// RoleSale marks back-office users allowed to append delivery logs.
	RoleSale Role = "sale"
)

// roleRegistry is the exhaustive set of roles accepted by [Role.Valid].
// New roles must be added here to become assignable.
var roleRegistry = map[Role]struct{}{
	RoleCustomer: {},
	RoleSale:     {},
}

// Valid reports whether r is a member of the role registry.
func (r Role) Valid() bool {
	_, ok := roleRegistry[r]
	return ok
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
