package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// To satisfy postgres jsonb data type
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c *Coord) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, c)
}

func (c Coord) Value() (driver.Value, error) {
	return json.Marshal(c)
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Size) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, s)
}

func (s Size) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Sticker is a positioned note belonging to exactly one desk
type Sticker struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeskID    uuid.UUID `gorm:"type:uuid;not null;index" json:"desk_id"`
	Coord     Coord     `gorm:"type:jsonb" json:"coord"`
	Size      Size      `gorm:"type:jsonb" json:"size"`
	Color     string    `gorm:"not null" json:"color"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (sticker *Sticker) BeforeCreate(tx *gorm.DB) error {
	if sticker.ID == uuid.Nil {
		sticker.ID = uuid.New()
	}
	return nil
}

// StickerPatch carries a partial update; nil fields are left unchanged
type StickerPatch struct {
	Coord *Coord  `json:"coord"`
	Size  *Size   `json:"size"`
	Color *string `json:"color"`
	Text  *string `json:"text"`
}

func (sticker *Sticker) ApplyPatch(patch StickerPatch) {
	if patch.Coord != nil {
		sticker.Coord = *patch.Coord
	}
	if patch.Size != nil {
		sticker.Size = *patch.Size
	}
	if patch.Color != nil {
		sticker.Color = *patch.Color
	}
	if patch.Text != nil {
		sticker.Text = *patch.Text
	}
}
