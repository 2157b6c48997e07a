package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-album/models"
	"github.com/golang-jwt/jwt/v5"
)

var testProfile = models.PlatformProfile{
	UserID:      "U123",
	DisplayName: "Taro",
	PictureURL:  "https://example.com/p.png",
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testProfile, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Claims.UserID != "U123" || token.Claims.Subject != "U123" {
		t.Errorf("unexpected claims %+v", token.Claims)
	}
	if token.Claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Claims.Issuer)
	}
	if token.String() != token.SignedString {
		t.Error("String() must return the signed token")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	cases := []struct {
		name     string
		issuer   string
		profile  models.PlatformProfile
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testProfile, time.Hour, "k"},
		{"zero duration", "i", testProfile, 0, "k"},
		{"empty key", "i", testProfile, time.Hour, ""},
		{"empty user", "i", models.PlatformProfile{}, time.Hour, "k"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tc.issuer, tc.profile, tc.duration, tc.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("issuer", testProfile, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "issuer")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Claims.UserID != "U123" || parsed.Claims.DisplayName != "Taro" {
		t.Errorf("unexpected claims %+v", parsed.Claims)
	}
	if parsed.Claims.PictureURL != testProfile.PictureURL {
		t.Errorf("expected picture url, got %s", parsed.Claims.PictureURL)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, _ := GenerateJWTToken("issuer", testProfile, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(token.SignedString, "other-key", "issuer")

	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, _ := GenerateJWTToken("issuer", testProfile, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(token.SignedString, "key", "someone-else")

	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := models.Claims{
		UserID: "U123",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "issuer")

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "issuer"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseClaimsUnverified(t *testing.T) {
	token, _ := GenerateJWTToken("issuer", testProfile, time.Hour, "key")

	claims, err := ParseClaimsUnverified(token.SignedString)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.DisplayName != "Taro" {
		t.Errorf("expected Taro, got %s", claims.DisplayName)
	}
}
