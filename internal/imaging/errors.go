package imaging

import "errors"

var (
	// ErrDecode is returned when the input is not a decodable image.
	ErrDecode = errors.New("image could not be decoded")
	// ErrInvalidQuality is returned for a quality outside [0, 1].
	ErrInvalidQuality = errors.New("quality must be within [0, 1]")
)
