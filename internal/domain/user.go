package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleOwner UserRole = "OWNER"
)

type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}
