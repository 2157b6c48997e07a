// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token. The token is stateless: its
// validity depends only on the signature and the registered expiry claim.
type Claims struct {
	// UserID is the identity provider user id.
	UserID string `json:"userId"`

	// DisplayName is copied from the provider profile at login time.
	DisplayName string `json:"displayName"`

	// PictureURL is copied from the provider profile at login time.
	PictureURL string `json:"pictureUrl,omitempty"`

	jwt.RegisteredClaims
}

// SessionUser returns the user object embedded in the token.
func (c Claims) SessionUser() SessionUser {
	return SessionUser{
		ID:          c.UserID,
		LineUserID:  c.UserID,
		DisplayName: c.DisplayName,
		PictureURL:  c.PictureURL,
	}
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	// Claims holds the decoded payload.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
