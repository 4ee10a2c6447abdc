package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "u-1", "admin", "sid-1", 15)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	if d := time.Until(tok.Exp); d < 14*time.Minute || d > 15*time.Minute {
		t.Errorf("Exp in %v, want ~15m", d)
	}
	got, err := ParseAccessToken("s3cret", tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}
	want := Claims{MemberID: "u-1", Role: "admin", SessionID: "sid-1"}
	if got != want {
		t.Errorf("claims = %+v, want %+v", got, want)
	}
}

func TestParseAccessTokenRejects(t *testing.T) {
	valid, _ := NewAccessToken("s3cret", "u-1", "user", "sid-1", 15)
	expired, _ := NewAccessToken("s3cret", "u-1", "user", "sid-1", -1)
	noSID, _ := NewAccessToken("s3cret", "u-1", "user", "", 15)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u-1", "sid": "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name, secret, raw string
	}{
		{"wrong secret", "other", valid.Token},
		{"expired", "s3cret", expired.Token},
		{"missing sid", "s3cret", noSID.Token},
		{"alg none", "s3cret", none},
		{"garbage", "s3cret", "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAccessToken(tt.secret, tt.raw); err == nil {
				t.Errorf("ParseAccessToken() accepted %s", tt.name)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("user123", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if !VerifyPassword(hash, "user123") {
		t.Errorf("VerifyPassword() rejected the right secret")
	}
	if VerifyPassword(hash, "user124") {
		t.Errorf("VerifyPassword() accepted a wrong secret")
	}
}
