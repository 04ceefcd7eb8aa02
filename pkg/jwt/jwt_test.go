package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("userID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Generate(1, "a@b.co")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewManager("secret-b").Verify(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("s")
	if _, err := m.Verify("not.a.token"); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
	if _, err := m.Verify(""); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("s")
	m.ttl = -time.Minute

	token, err := m.Generate(1, "a@b.co")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := m.Verify(token); err != ErrExpiredToken {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}
