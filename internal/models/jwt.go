package models

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}
