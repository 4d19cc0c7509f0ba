package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Desk is a shared canvas owned by exactly one user
type Desk struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Stickers []Sticker   `json:"-" gorm:"foreignKey:DeskID;constraint:OnDelete:CASCADE"`
	Shares   []DeskShare `json:"-" gorm:"foreignKey:DeskID;constraint:OnDelete:CASCADE"`
}

func (desk *Desk) BeforeCreate(tx *gorm.DB) error {
	if desk.ID == uuid.Nil {
		desk.ID = uuid.New()
	}
	return nil
}
