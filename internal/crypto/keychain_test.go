package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestCookieKeys_Deterministic(t *testing.T) {
	k := NewKeyChainService()

	h1, b1, err := k.CookieKeys("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, b2, _ := k.CookieKeys("secret")

	if len(h1) != hashKeyLen || len(b1) != blockKeyLen {
		t.Fatalf("unexpected key sizes %d/%d", len(h1), len(b1))
	}
	if !bytes.Equal(h1, h2) || !bytes.Equal(b1, b2) {
		t.Error("same secret must yield the same keys")
	}
	if bytes.Equal(h1[:blockKeyLen], b1) {
		t.Error("hash and block keys must differ")
	}
}

func TestCookieKeys_DifferentSecrets(t *testing.T) {
	k := NewKeyChainService()

	h1, _, _ := k.CookieKeys("secret-a")
	h2, _, _ := k.CookieKeys("secret-b")

	if bytes.Equal(h1, h2) {
		t.Error("different secrets must yield different keys")
	}
}

func TestCookieKeys_EmptySecret(t *testing.T) {
	_, _, err := NewKeyChainService().CookieKeys("")
	if !errors.Is(err, ErrEmptySecret) {
		t.Errorf("expected ErrEmptySecret, got %v", err)
	}
}

func TestNewState_Unique(t *testing.T) {
	k := NewKeyChainService()

	s1, err := k.NewState()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, _ := k.NewState()

	if s1 == "" || s1 == s2 {
		t.Errorf("expected two distinct states, got %q and %q", s1, s2)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestNewState_RandomFailure(t *testing.T) {
	k := &keyChainService{random: failingReader{}}

	if _, err := k.NewState(); err == nil {
		t.Error("expected error when the random source fails")
	}
}
