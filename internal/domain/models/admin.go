package models

// AdminRole is the only role issued by the login flow
const AdminRole = "admin"

// AdminUser represents the authenticated admin identity. It is never
// persisted; the identity lives entirely inside the signed token.
type AdminUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
