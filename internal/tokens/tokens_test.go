package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAdminToken_ValidAndClaims(t *testing.T) {
	secret := "test-secret-32-bytes-should-be-long-enough"
	tokenStr, err := GenerateAdminToken(secret, 2*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}

	claims, err := ParseAdminToken(secret, tokenStr)
	if err != nil {
		t.Fatalf("ParseAdminToken error: %v", err)
	}
	if claims["role"] != "admin" {
		t.Fatalf("unexpected role claim: got=%v", claims["role"])
	}
}

func TestParseAdminToken_Expired(t *testing.T) {
	secret := "another-secret-32-bytes-longgggg"
	tokenStr, err := GenerateAdminToken(secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}
	if _, err := ParseAdminToken(secret, tokenStr); err == nil {
		t.Fatalf("expected parse to fail for expired token")
	}
}

func TestParseAdminToken_WrongSecretFails(t *testing.T) {
	tokenStr, err := GenerateAdminToken("secret-one-32-bytes-xxxxxxxxxxxxxxxx", 2*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}
	if _, err := ParseAdminToken("different-secret-xxxxxxxxxxxxxxxx", tokenStr); err == nil {
		t.Fatalf("expected parse to fail with wrong secret")
	}
}

func TestParseAdminToken_Malformed(t *testing.T) {
	if _, err := ParseAdminToken("x", "not.a.jwt"); err == nil {
		t.Fatalf("expected parse to fail for malformed token")
	}
}

// Rejected when the role claim is missing
func TestParseAdminToken_MissingRole(t *testing.T) {
	secret := "role-test-secret-32-bytes-xxxxxxxxx"
	claims := jwt.MapClaims{"iat": time.Now().Unix(), "exp": time.Now().Add(time.Minute).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAdminToken(secret, raw); err == nil {
		t.Fatalf("expected parse to reject token without admin role")
	}
}
