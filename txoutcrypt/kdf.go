// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutcrypt

import (
	"golang.org/x/crypto/blake2b"
)

// kdfDomainTag and kdfLabel are the two fixed ASCII strings bound into
// the KDF's hash state before the caller-supplied inputs, per
// spec.md §4.1 and §6. They must never change: doing so is a
// wire-breaking change for every payload already on chain.
const (
	kdfDomainTag = "TransactionSecureNonceKdfDomain"
	kdfLabel     = "encrypted_value_and_mask"
)

// AeadKeySize is the size in bytes of the key deriveAeadKey produces.
const AeadKeySize = 32

// deriveAeadKey computes the 32-byte AEAD key:
//
//	Blake2b-256(domain(kdfDomainTag, kdfLabel) || encryptionKey || commitment)
//
// Neither encryptionKey nor commitment needs to be unique between
// calls; the random nonce used by the AEAD itself supplies freshness.
// Binding the commitment into the key ties the ciphertext to the
// output it belongs to.
func deriveAeadKey(encryptionKey, commitment [32]byte) ([AeadKeySize]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [AeadKeySize]byte{}, newError(KindEncryptionFailed, "kdf hash init", err)
	}

	// Domain-separate the two fixed labels with a one-byte length
	// prefix each; both are short, fixed ASCII strings, so a single
	// byte is always sufficient and this never depends on caller
	// input.
	h.Write([]byte{byte(len(kdfDomainTag))})
	h.Write([]byte(kdfDomainTag))
	h.Write([]byte{byte(len(kdfLabel))})
	h.Write([]byte(kdfLabel))

	h.Write(encryptionKey[:])
	h.Write(commitment[:])

	var key [AeadKeySize]byte
	h.Sum(key[:0])
	return key, nil
}
