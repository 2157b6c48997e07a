package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-album/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// parameter is missing.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 session token for the given
// profile.
//
// The token carries the profile fields (userId, displayName, pictureUrl) and
// the registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user id
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-photo-album", profile, 7*24*time.Hour, "secret")
func GenerateJWTToken(issuer string, profile models.PlatformProfile, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || profile.UserID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.Claims{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		PictureURL:  profile.PictureURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   profile.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given token string and extracts its
// claims.
//
// Validation includes the HS256 signature, the issuer and the expiry. The
// returned error wraps the jwt sentinel (for example jwt.ErrTokenExpired) so
// callers can tell an expired token from a forged one.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, errors.New("empty user id in token")
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseClaimsUnverified decodes the token payload without checking the
// signature. The client uses it to show the cached user and the expiry.
func ParseClaimsUnverified(tokenString string) (models.Claims, error) {
	claims := models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Claims{}, err
	}
	return claims, nil
}
