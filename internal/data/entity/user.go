package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleBusiness UserRole = "business"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
