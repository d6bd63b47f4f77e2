package models

// User is an admin-dashboard account. Public visitors are never users.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         UserRole   `gorm:"default:'admin'" json:"role"`
	Status       UserStatus `gorm:"default:'active'" json:"status"`
}

func (User) TableName() string {
	return "users"
}
