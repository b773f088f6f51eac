package auth

import (
	"testing"
	"time"

	"appointment-booking-api/internal/model"
)

const secret = "test-secret"

var testUser = &model.User{
	ID:    "user-42",
	Name:  "Test User",
	Email: "test@example.com",
	Role:  model.RoleUser,
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken(testUser, secret)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if claims.UserID != testUser.ID {
		t.Errorf("userId: got %s", claims.UserID)
	}
	if claims.Email != testUser.Email {
		t.Errorf("email: got %s", claims.Email)
	}
	if claims.Role != testUser.Role {
		t.Errorf("role: got %s", claims.Role)
	}
	if claims.Name != testUser.Name {
		t.Errorf("name: got %s", claims.Name)
	}
}

func TestTokenExpiry(t *testing.T) {
	tok, err := MakeToken(testUser, secret)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}
	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	diff := time.Until(claims.ExpiresAt.Time)
	if diff < 23*time.Hour || diff > 25*time.Hour {
		t.Errorf("expected ~24h expiry, got %v", diff)
	}
}

func TestTokenRejection(t *testing.T) {
	tok, _ := MakeToken(testUser, secret)

	if _, err := ParseToken(tok, "wrong-secret"); err == nil {
		t.Error("tampered signature accepted")
	}
	if _, err := ParseToken("not.a.token", secret); err == nil {
		t.Error("garbage token accepted")
	}
	if _, err := ParseToken("", secret); err == nil {
		t.Error("empty token accepted")
	}
}

func TestIdentityFromHeader(t *testing.T) {
	tok, _ := MakeToken(testUser, secret)

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"valid bearer", "Bearer " + tok, true},
		{"missing header", "", false},
		{"wrong scheme", "Basic " + tok, false},
		{"lowercase scheme", "bearer " + tok, false},
		{"bare token", tok, false},
		{"bearer garbage", "Bearer nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IdentityFromHeader(tt.header, secret)
			if ok != tt.want {
				t.Fatalf("ok: got %v, want %v", ok, tt.want)
			}
			if ok && got.UserID != testUser.ID {
				t.Errorf("userId: got %s", got.UserID)
			}
		})
	}
}
