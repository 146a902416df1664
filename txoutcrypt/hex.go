// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutcrypt

import "encoding/hex"

// ToHex renders p as lowercase hex with no leading "0x", the form
// spec.md §6 specifies for logs and APIs (raw bytes remain the
// consensus encoding).
func (p EncryptedPayload) ToHex() string {
	return hex.EncodeToString(p.data)
}

// FromHex parses the output of ToHex back into an EncryptedPayload,
// applying the same length validation as FromBytes.
func FromHex(s string) (EncryptedPayload, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return EncryptedPayload{}, newError(KindIncorrectLength, "malformed hex", err)
	}
	return FromBytes(b)
}

// String implements fmt.Stringer with a truncated view: the first and
// last 16 hex characters joined by "..", so logging a payload never
// dumps the full ciphertext. Payloads short enough that truncation
// would save nothing are shown in full.
func (p EncryptedPayload) String() string {
	h := p.ToHex()
	if len(h) <= 32 {
		return h
	}
	return h[:16] + ".." + h[len(h)-16:]
}
