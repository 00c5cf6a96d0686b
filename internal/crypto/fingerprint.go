package crypto

import (
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
)

var ErrFingerprintKey = errors.New("fingerprint key must not be empty")

// Fingerprint returns a keyed BLAKE2b-256 digest of value, hex encoded.
// It is used to correlate requests from the same client without storing
// the client address itself.
//
// BLAKE2b accepts keys of at most 64 bytes, so key is first reduced to a
// 32-byte digest. Secrets of any length are usable.
func Fingerprint(value string, key []byte) (string, error) {
	if len(key) == 0 {
		return "", ErrFingerprintKey
	}

	k := blake2b.Sum256(key)
	h, err := blake2b.New256(k[:])
	if err != nil {
		return "", err
	}
	h.Write([]byte(value))

	return hex.EncodeToString(h.Sum(nil)), nil
}
