package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("test-secret", 17, 24)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token")
	}
	if remaining := time.Until(tok.Exp); remaining < 23*time.Hour {
		t.Fatalf("expiration too close: %v", remaining)
	}

	uid, err := ParseSessionToken("test-secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if uid != 17 {
		t.Fatalf("uid = %d, want 17", uid)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("secret-a", 1, 1)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("secret-b", tok.Token); err != ErrInvalidSession {
		t.Fatalf("err = %v, want ErrInvalidSession", err)
	}
}

func TestParseSessionTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "a.b.c"} {
		if _, err := ParseSessionToken("secret", raw); err != ErrInvalidSession {
			t.Errorf("ParseSessionToken(%q) err = %v, want ErrInvalidSession", raw, err)
		}
	}
}

func TestHashSessionRaw(t *testing.T) {
	a := HashSessionRaw("token-one")
	b := HashSessionRaw("token-one")
	c := HashSessionRaw("token-two")
	if a != b {
		t.Error("hash not deterministic")
	}
	if a == c {
		t.Error("distinct tokens collide")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
