package models

import "gorm.io/gorm"

// User is an account that can sign in to the admin. New registrations
// start inactive and without staff privileges; activation happens through
// the email verification link.
type User struct {
	gorm.Model
	FirstName   string `gorm:"size:255;not null" json:"first_name"`
	LastName    string `gorm:"size:255;not null;default:''" json:"last_name"`
	Email       string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	IsActive    bool   `gorm:"not null;default:false" json:"is_active"`
	IsStaff     bool   `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool   `gorm:"not null;default:false" json:"is_superuser"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
