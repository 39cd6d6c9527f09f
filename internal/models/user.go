// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	PhoneNumber  string     `json:"phone_number" gorm:"size:30"`
	Location     string     `json:"location" gorm:"size:255"`

	// Artisan-only fields
	CraftType      string  `json:"craft_type,omitempty" gorm:"size:50"`
	Description    string  `json:"description,omitempty" gorm:"size:500"`
	ProfilePicture string  `json:"profile_picture,omitempty" gorm:"size:512"`
	AverageRating  float64 `json:"average_rating" gorm:"default:0"`

	// Relationships
	PortfolioItems []PortfolioItem `json:"portfolio_items,omitempty" gorm:"foreignKey:ArtisanID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
