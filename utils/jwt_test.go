package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "Asha", "subadmin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}

	if uid, _ := claims["user_id"].(float64); uint(uid) != 42 {
		t.Fatalf("user_id = %v, want 42", claims["user_id"])
	}
	if claims["role"] != "subadmin" {
		t.Fatalf("role = %v, want subadmin", claims["role"])
	}
	if claims["name"] != "Asha" {
		t.Fatalf("name = %v, want Asha", claims["name"])
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Fatal("garbage token must not verify")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(1, "x", "client", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := VerifyToken(token); err == nil {
		t.Fatal("expired token must not verify")
	}
}
