package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken("alice", secret)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.Subject != "alice" {
		t.Errorf("subject = %q, want %q", claims.Subject, "alice")
	}

	until := time.Until(claims.ExpiresAt.Time)
	if until < TokenTTL-time.Minute || until > TokenTTL {
		t.Errorf("expiry %v from now, want about %v", until, TokenTTL)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	token, err := expired.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := ParseToken(token, secret); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token, err := NewToken("alice", secret)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	if _, err := ParseToken(token, []byte("other-secret")); err == nil {
		t.Error("expected error for wrong secret")
	}

	if _, err := ParseToken(token+"x", secret); err == nil {
		t.Error("expected error for tampered signature")
	}
}

func TestFromHeader(t *testing.T) {
	token, err := NewToken("alice", secret)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	tests := []struct {
		name    string
		header  string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer " + token, wantErr: false},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic " + token, wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
		{name: "garbage token", header: "Bearer garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := FromHeader(tt.header, secret)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromHeader: %v", err)
			}
			if claims.Subject != "alice" {
				t.Errorf("subject = %q, want %q", claims.Subject, "alice")
			}
		})
	}
}
