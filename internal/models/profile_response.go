package models

import "github.com/google/uuid"

type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ProfilePhoto *string   `json:"profile_photo"`
}
