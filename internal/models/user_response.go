package models

import "github.com/google/uuid"

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfilePhoto *string   `json:"profile_photo"`
}
