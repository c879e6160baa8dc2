package model

import "strings"

// Role is the closed set of identity partitions.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleDoctor     Role = "Doctor"
	RolePatient    Role = "Patient"
	RolePharmacist Role = "Pharmacist"
	RoleSupplier   Role = "Supplier"
)

// SupplierIDPrefix guards supplier-change requests.
const SupplierIDPrefix = "supp"

// rolePrefixes maps id prefixes to roles. Order matters only for lookup
// determinism; the prefixes do not overlap.
var rolePrefixes = []struct {
	prefix string
	role   Role
}{
	{"admin", RoleAdmin},
	{"doc", RoleDoctor},
	{"pat", RolePatient},
	{"pharm", RolePharmacist},
	{"supp", RoleSupplier},
}

// AllRoles returns the partitions in login search order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RolePatient, RolePharmacist, RoleSupplier}
}

// RoleFromID derives the role from the id's prefix. The prefix is the sole
// authority: "doc42" is a Doctor no matter what table it came from.
func RoleFromID(id string) (Role, bool) {
	for _, rp := range rolePrefixes {
		if strings.HasPrefix(id, rp.prefix) {
			return rp.role, true
		}
	}
	return "", false
}

// ParseRole converts a role string from a token claim back to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RolePatient, RolePharmacist, RoleSupplier:
		return Role(s), true
	}
	return "", false
}
