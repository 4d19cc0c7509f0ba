package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeskShare grants non-owner access to a desk. Unique per (desk, user);
// the owner needs no share row.
type DeskShare struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeskID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_desk_user" json:"desk_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_desk_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (share *DeskShare) BeforeCreate(tx *gorm.DB) error {
	if share.ID == uuid.Nil {
		share.ID = uuid.New()
	}
	return nil
}
