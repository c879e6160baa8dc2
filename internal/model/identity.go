package model

// Identity is a credential record in one of the five role partitions.
// The id prefix determines the partition and is immutable after creation.
// Username and password are never touched by the update path; only the
// role-specific attributes below are mutable.
type Identity struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password_hash"`
	Role     Role   `json:"role" db:"-"`

	// Doctor
	Specialty *string `json:"specialty,omitempty" db:"specialty"`
	// Pharmacist
	PharmacyLocation *string `json:"pharmacy_location,omitempty" db:"pharmacy_location"`
	// Patient
	DateOfBirth *string `json:"date_of_birth,omitempty" db:"date_of_birth"`
	// Patient and Supplier
	ContactInfo *string `json:"contact_info,omitempty" db:"contact_info"`
	// Supplier
	Address *string `json:"address,omitempty" db:"address"`
	Name    *string `json:"name,omitempty" db:"name"`
}

// LoginRequest carries credentials for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries a new identity. The role is derived from the id.
type RegisterRequest struct {
	ID       string `json:"id" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the login result.
type TokenResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
	ID    string `json:"id"`
}

// RegisterResponse is the registration result.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Role    Role   `json:"role"`
}

// Per-role update requests. The update contract is all-or-nothing: every
// mutable field of the role is required on every update.

type UpdateDoctorRequest struct {
	Username  string `json:"username" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
}

type UpdatePharmacistRequest struct {
	Username         string `json:"username" binding:"required"`
	PharmacyLocation string `json:"pharmacy_location" binding:"required"`
}

type UpdatePatientRequest struct {
	Username    string `json:"username" binding:"required"`
	ContactInfo string `json:"contact_info" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
}

type UpdateSupplierRequest struct {
	Username    string `json:"username" binding:"required"`
	ContactInfo string `json:"contact_info" binding:"required"`
	Address     string `json:"address" binding:"required"`
}
