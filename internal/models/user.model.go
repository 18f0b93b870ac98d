package models

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleRBT   UserRole = "RBT"
)

// User is a portal account. Candidates may have a linked account; admins
// always do. Inactive accounts cannot log in.
type User struct {
	BaseUUIDModel
	FirstName string   `gorm:"type:varchar(100);not null"         json:"firstName"`
	LastName  string   `gorm:"type:varchar(100);not null"         json:"lastName"`
	Email     string   `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string   `gorm:"type:varchar(255);not null"         json:"-"`
	Role      UserRole `gorm:"type:varchar(20);not null"          json:"role"`
	Active    bool     `gorm:"not null;default:true"              json:"active"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
