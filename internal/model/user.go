package model

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User represents an account credential. Password holds the bcrypt hash,
// never the plaintext; it is persisted under the "password" key in
// users.json but must never appear in an API response, so handlers build
// responses field by field instead of marshalling User directly.
type User struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterUserRequest is the payload for creating a new account
type RegisterUserRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN EMPLOYEE"`
}

// LoginUserRequest is the payload for credential validation
type LoginUserRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}
