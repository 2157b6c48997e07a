package service

import "errors"

// Validation errors. The HTTP layer answers 400 for each of them.
var (
	ErrValidationNoUserID       = errors.New("no user ID was given")
	ErrValidationNoTitle        = errors.New("no album title was given")
	ErrValidationInvalidAlbum   = errors.New("invalid album data")
	ErrValidationNoProfile      = errors.New("no platform profile was given")
	ErrValidationInvalidSetting = errors.New("invalid slideshow settings")
)

// Auth errors.
var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrUserNotFound            = errors.New("user was not found")
	ErrUserInactive            = errors.New("user is inactive")
	ErrForeignAlbum            = errors.New("album belongs to another user")
)

// ErrProvider wraps every identity provider failure during the code flow.
var ErrProvider = errors.New("identity provider error")

// Client errors.
var (
	ErrAuthExchange     = errors.New("platform profile exchange failed")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoPhotos         = errors.New("no photos selected")
	ErrPhotoNotFound    = errors.New("photo was not found")
)
