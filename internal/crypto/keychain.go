// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrEmptySecret is returned when no session secret is configured.
var ErrEmptySecret = errors.New("empty session secret")

const (
	hashKeyLen  = 64
	blockKeyLen = 32
	stateLen    = 32

	cookieKeysInfo = "go-photo-album session cookie"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] backed by the OS CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{random: rand.Reader}
}

// CookieKeys implements [KeyChainService] with HKDF-SHA256. Both keys are
// read from a single HKDF stream.
func (k *keyChainService) CookieKeys(secret string) ([]byte, []byte, error) {
	if secret == "" {
		return nil, nil, ErrEmptySecret
	}

	stream := hkdf.New(sha256.New, []byte(secret), nil, []byte(cookieKeysInfo))

	hashKey := make([]byte, hashKeyLen)
	if _, err := io.ReadFull(stream, hashKey); err != nil {
		return nil, nil, fmt.Errorf("derive cookie hash key: %w", err)
	}

	blockKey := make([]byte, blockKeyLen)
	if _, err := io.ReadFull(stream, blockKey); err != nil {
		return nil, nil, fmt.Errorf("derive cookie block key: %w", err)
	}

	return hashKey, blockKey, nil
}

// NewState implements [KeyChainService].
func (k *keyChainService) NewState() (string, error) {
	buf := make([]byte, stateLen)
	if _, err := io.ReadFull(k.random, buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
