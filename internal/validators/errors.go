package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserID     = errors.New("user id is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrDescTooLong     = errors.New("description is too long")
	ErrInvalidURL      = errors.New("invalid thumbnail url")
	ErrInvalidSettings = errors.New("invalid slideshow settings")
)
