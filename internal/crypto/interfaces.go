package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns the server-side secrets used around the login flow.
// It knows nothing about HTTP or storage.
type KeyChainService interface {
	// CookieKeys derives the HMAC key (64 bytes) and the AES-256 key
	// (32 bytes) of the signed session cookie from the configured secret.
	// The same secret always yields the same keys, so cookies survive restarts.
	CookieKeys(secret string) (hashKey, blockKey []byte, err error)

	// NewState returns a random URL-safe value for the OAuth "state"
	// parameter.
	NewState() (string, error)
}
