// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zeroize provides helpers for scrubbing buffers that briefly
// hold sensitive plaintext before their storage is released.
package zeroize

// Bytes overwrites b with zeros in place. It is a no-op for a nil or
// empty slice.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Bytes32 overwrites b with zeros in place.
func Bytes32(b *[32]byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
