// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txoutcrypt implements the confidential-output payload codec:
// it encrypts and authenticates the value, blinding mask, and payment
// id that ride alongside every transaction output, and decrypts them
// on the receiving side. See SPEC_FULL.md for the full design.
package txoutcrypt
