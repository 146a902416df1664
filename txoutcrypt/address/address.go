// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address stubs the external address module spec.md §1 treats
// as a collaborator: a single-key or dual-key opaque byte blob of two
// known fixed sizes. txoutcrypt's PaymentIdCodec only needs to know
// those two sizes and be able to attempt a fallible-on-content decode
// of a candidate slice (TryDecode); it never needs to interpret what
// an address actually means.
package address

import (
	"github.com/EXCCoin/base58"
	"github.com/dchest/blake256"
)

const (
	// SizeSingle is the wire size of a single-key address: a
	// 1-byte network id, a 1-byte feature flag, a 32-byte public
	// key, and a 4-byte checksum.
	SizeSingle = 1 + 1 + 32 + checksumSize

	// SizeDual is the wire size of a dual-key address: SizeSingle
	// plus a second 32-byte public key (a view key alongside the
	// spend key).
	SizeDual = SizeSingle + 32

	checksumSize = 4
)

// Address is an opaque, fixed-size address blob. The zero value is
// not a valid address.
type Address struct {
	bytes []byte // len is SizeSingle or SizeDual
	dual  bool
}

// Size returns the wire length of a, SizeSingle or SizeDual.
func (a Address) Size() int {
	return len(a.bytes)
}

// IsDual reports whether a carries a second (view) key.
func (a Address) IsDual() bool {
	return a.dual
}

// Bytes returns the raw wire bytes of a, including its checksum.
func (a Address) Bytes() []byte {
	out := make([]byte, len(a.bytes))
	copy(out, a.bytes)
	return out
}

// ToBase58 renders a in the same base58 form the teacher's
// dcrutil/wif.go uses for wallet import strings.
func (a Address) ToBase58() string {
	return base58.Encode(a.bytes)
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.ToBase58()
}

// hashBlake256 hashes data with a single pass of blake256, the same
// hash gcs/gcs.go imports from github.com/dchest/blake256.
func hashBlake256(data []byte) []byte {
	h := blake256.New()
	h.Write(data)
	return h.Sum(nil)
}

// checksum computes the double-blake256 checksum dcrutil/wif.go's
// checksum role uses double SHA-256 for; here blake256 takes SHA-256's
// place for a single hash family across the codec's external-address
// stub.
func checksum(payload []byte) [checksumSize]byte {
	first := hashBlake256(payload)
	second := hashBlake256(first)
	var out [checksumSize]byte
	copy(out[:], second[:checksumSize])
	return out
}

// New builds a single-key address from a network id, feature byte,
// and 32-byte spend key, computing and appending its checksum.
func New(network, features byte, spendKey [32]byte) Address {
	payload := make([]byte, 0, SizeSingle-checksumSize)
	payload = append(payload, network, features)
	payload = append(payload, spendKey[:]...)
	sum := checksum(payload)
	return Address{bytes: append(payload, sum[:]...)}
}

// NewDual builds a dual-key address from a network id, feature byte,
// 32-byte spend key, and 32-byte view key, computing and appending
// its checksum.
func NewDual(network, features byte, spendKey, viewKey [32]byte) Address {
	payload := make([]byte, 0, SizeDual-checksumSize)
	payload = append(payload, network, features)
	payload = append(payload, spendKey[:]...)
	payload = append(payload, viewKey[:]...)
	sum := checksum(payload)
	return Address{bytes: append(payload, sum[:]...), dual: true}
}

// TryDecode attempts to interpret b as an address. It never returns an
// error: it returns false if b is not exactly SizeSingle or SizeDual
// bytes long, or if b's checksum does not verify.
func TryDecode(b []byte) (Address, bool) {
	var dual bool
	switch len(b) {
	case SizeSingle:
		dual = false
	case SizeDual:
		dual = true
	default:
		return Address{}, false
	}

	payload := b[:len(b)-checksumSize]
	want := checksum(payload)
	got := b[len(b)-checksumSize:]
	for i := range want {
		if want[i] != got[i] {
			return Address{}, false
		}
	}

	out := make([]byte, len(b))
	copy(out, b)
	return Address{bytes: out, dual: dual}, true
}
