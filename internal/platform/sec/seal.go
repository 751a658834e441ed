// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

// sealedPrefix marks a value produced by [Sealer.Seal]. The version allows the
// key derivation to change without misreading old values.
const sealedPrefix = "sealed:v1:"

// keyDerivationSalt is fixed: the passphrase is per installation, and the
// derived key never leaves the process.
var keyDerivationSalt = []byte("phoenix-client-storage")

// ErrUnsealable is returned when a value cannot be opened with the current key.
var ErrUnsealable = errors.New("sec: value cannot be unsealed")

// Sealer encrypts and authenticates short storage values with NaCl secretbox.
type Sealer struct {
	key [32]byte
}

// NewSealer derives a storage key from passphrase using Argon2id.
func NewSealer(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, errors.New("sec: empty storage passphrase")
	}

	sealer := &Sealer{}
	derived := argon2.IDKey([]byte(passphrase), keyDerivationSalt, 1, 64*1024, 4, 32)
	copy(sealer.key[:], derived)

	return sealer, nil
}

// Seal encrypts plaintext and returns a printable string safe to store.
func (s *Sealer) Seal(plaintext string) (string, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("sec: failed to read nonce: %w", err)
	}

	box := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(box), nil
}

// Open reverses [Sealer.Seal]. Any tampering, a different key, or a value that
// was never sealed yields [ErrUnsealable].
func (s *Sealer) Open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", ErrUnsealable
	}

	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil || len(raw) < 24+secretbox.Overhead {
		return "", ErrUnsealable
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	plaintext, ok := secretbox.Open(nil, raw[24:], &nonce, &s.key)
	if !ok {
		return "", ErrUnsealable
	}

	return string(plaintext), nil
}
