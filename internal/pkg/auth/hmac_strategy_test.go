package auth

import (
	"encoding/base64"
	"testing"
	"time"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	s := NewHMACStrategy("secret", Options{Audience: AudienceStaff})

	token, err := s.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	subject, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if subject != 42 {
		t.Fatalf("expected subject 42, got %d", subject)
	}
}

func TestHMACStrategyRejectsOtherAudience(t *testing.T) {
	staff := NewHMACStrategy("secret", Options{Audience: AudienceStaff})
	portal := NewHMACStrategy("secret", Options{Audience: AudiencePortal})

	token, err := staff.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := portal.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected staff token to be rejected by portal strategy, got %v", err)
	}
}

func TestHMACStrategyRejectsTamperedToken(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})

	token, err := s.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := s.ParseToken(tampered); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: -time.Minute})

	token, err := s.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestHMACStrategyRejectsGarbage(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})

	for _, token := range []string{"", "not-base64!!", base64.StdEncoding.EncodeToString([]byte("a:b"))} {
		if _, err := s.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected invalid token error for %q, got %v", token, err)
		}
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(0)

	hash, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := h.Compare(hash, "password123"); err != nil {
		t.Fatalf("expected matching password, got %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
