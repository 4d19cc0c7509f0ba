package utils

import (
	"errors"
	"stickerDesk/internal/enums"
	"stickerDesk/internal/errs"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCreateAndVerifyToken(t *testing.T) {
	key := GetJwtKey()
	userID := uuid.NewString()
	sessionID := uuid.NewString()

	token, err := CreateJwtToken(userID, sessionID, enums.TOKEN_TYPE_ACCESS, key, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("CreateJwtToken() error = %v", err)
	}

	claims, err := VerifyToken(token, enums.TOKEN_TYPE_ACCESS, key)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID)
	}
	if claims.SessionID != sessionID {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, sessionID)
	}
	if claims.TokenType != enums.TOKEN_TYPE_ACCESS {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, enums.TOKEN_TYPE_ACCESS)
	}
}

func TestVerifyTokenRejectsWrongType(t *testing.T) {
	key := GetJwtKey()
	token, err := CreateJwtToken(uuid.NewString(), uuid.NewString(), enums.TOKEN_TYPE_REFRESH, key, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("CreateJwtToken() error = %v", err)
	}

	if _, err := VerifyToken(token, enums.TOKEN_TYPE_ACCESS, key); !errors.Is(err, errs.ErrWrongTokenType) {
		t.Errorf("VerifyToken() error = %v, want %v", err, errs.ErrWrongTokenType)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	key := GetJwtKey()
	token, err := CreateJwtToken(uuid.NewString(), uuid.NewString(), enums.TOKEN_TYPE_ACCESS, key, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("CreateJwtToken() error = %v", err)
	}

	if _, err := VerifyToken(token, enums.TOKEN_TYPE_ACCESS, key); err == nil {
		t.Error("VerifyToken() accepted an expired token")
	}
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	key := GetJwtKey()
	token, err := CreateJwtToken(uuid.NewString(), uuid.NewString(), enums.TOKEN_TYPE_ACCESS, key, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("CreateJwtToken() error = %v", err)
	}

	if _, err := VerifyToken(token+"x", enums.TOKEN_TYPE_ACCESS, key); err == nil {
		t.Error("VerifyToken() accepted a tampered token")
	}
	if _, err := VerifyToken("not-a-token", enums.TOKEN_TYPE_ACCESS, key); err == nil {
		t.Error("VerifyToken() accepted garbage")
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cretPass!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if err := CompareHashAndPassword(hash, "s3cretPass!"); err != nil {
		t.Errorf("CompareHashAndPassword() rejected the right password: %v", err)
	}
	if err := CompareHashAndPassword(hash, "wrong"); err == nil {
		t.Error("CompareHashAndPassword() accepted a wrong password")
	}
}
