// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account created on the first successful identity
// provider login. Users are never hard-deleted; IsActive is the soft switch
// consulted by the auth middleware.
type User struct {
	// UserID is the internal database identifier.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// LineUserID is the identifier assigned by the identity provider. It is
	// the public user id carried in session tokens and album requests.
	LineUserID string `json:"line_user_id"`

	// DisplayName is the provider profile name shown in the UI.
	DisplayName string `json:"display_name"`

	// PictureURL is the optional provider profile picture.
	PictureURL *string `json:"picture_url,omitempty"`

	// IsActive is false for users that were switched off by an operator.
	IsActive bool `json:"-"`

	// CreatedAt is the timestamp of the first login.
	CreatedAt time.Time `json:"created_at"`

	// LastLoginAt is bumped on every successful login.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SessionUser is the user object handed to the browser after login and kept
// by the client session manager under the auth_user key.
type SessionUser struct {
	ID          string     `json:"id"`
	LineUserID  string     `json:"line_user_id,omitempty"`
	DisplayName string     `json:"display_name"`
	PictureURL  string     `json:"picture_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// NewSessionUser builds the client-facing user object from a stored user.
func NewSessionUser(u User) SessionUser {
	su := SessionUser{
		ID:          u.LineUserID,
		LineUserID:  u.LineUserID,
		DisplayName: u.DisplayName,
		LastLoginAt: u.LastLoginAt,
	}
	if u.PictureURL != nil {
		su.PictureURL = *u.PictureURL
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		su.CreatedAt = &createdAt
	}
	return su
}

// PlatformProfile is a profile already validated by an embedded (mini-app)
// platform SDK. It is exchanged for a session token without a code exchange.
type PlatformProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl,omitempty"`
}

// ToUser converts the profile into a [User] ready to be upserted.
func (p PlatformProfile) ToUser() User {
	u := User{
		LineUserID:  p.UserID,
		DisplayName: p.DisplayName,
		IsActive:    true,
	}
	if p.PictureURL != "" {
		picture := p.PictureURL
		u.PictureURL = &picture
	}
	return u
}
