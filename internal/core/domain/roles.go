package domain

// Role names stored in the roles table
const (
	RoleAdmin        = "Admin"
	RoleVeterinarian = "Veterinarian"
	RoleReceptionist = "Receptionist"
)

// Roles lists every role the seeder guarantees
var Roles = []string{RoleAdmin, RoleVeterinarian, RoleReceptionist}
