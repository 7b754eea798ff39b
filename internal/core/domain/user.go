package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated operator.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
