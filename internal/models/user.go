package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account able to own and join desks
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Password     string    `gorm:"-" json:"password"`
	ProfilePhoto *string   `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`

	DesksOwned []Desk      `json:"-" gorm:"foreignKey:OwnerID"`
	DeskShares []DeskShare `json:"-" gorm:"foreignKey:UserID"`
}

func (user *User) BeforeCreate(tx *gorm.DB) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return nil
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		ProfilePhoto: user.ProfilePhoto,
	}
}

func (user *User) ToProfileResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		ProfilePhoto: user.ProfilePhoto,
	}
}
