// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import "testing"

func TestSizesIncreaseAsExpected(t *testing.T) {
	// Mirrors the original source's address_sizes_increase_as_expected
	// assertion: the payment id wire-format size classes must be
	// strictly ordered for the length-dispatched decode to work.
	const sizeValue = 8
	const sizeU256 = 32
	if !(sizeValue < sizeU256 && sizeU256 < SizeSingle && SizeSingle < SizeDual) {
		t.Fatalf("size ordering violated: %d < %d < %d < %d", sizeValue, sizeU256, SizeSingle, SizeDual)
	}
}

func TestRoundTrip(t *testing.T) {
	var spend, view [32]byte
	for i := range spend {
		spend[i] = byte(i)
		view[i] = byte(255 - i)
	}

	single := New(0x01, 0x00, spend)
	if single.Size() != SizeSingle || single.IsDual() {
		t.Fatalf("unexpected single address shape: size=%d dual=%v", single.Size(), single.IsDual())
	}
	decodedSingle, ok := TryDecode(single.Bytes())
	if !ok {
		t.Fatal("expected single address to decode")
	}
	if decodedSingle.IsDual() {
		t.Fatal("single address misclassified as dual")
	}

	dual := NewDual(0x01, 0x00, spend, view)
	if dual.Size() != SizeDual || !dual.IsDual() {
		t.Fatalf("unexpected dual address shape: size=%d dual=%v", dual.Size(), dual.IsDual())
	}
	decodedDual, ok := TryDecode(dual.Bytes())
	if !ok {
		t.Fatal("expected dual address to decode")
	}
	if !decodedDual.IsDual() {
		t.Fatal("dual address misclassified as single")
	}
}

func TestTryDecodeRejectsBadChecksum(t *testing.T) {
	var spend [32]byte
	single := New(0x01, 0x00, spend)
	b := single.Bytes()
	b[len(b)-1] ^= 0xff

	if _, ok := TryDecode(b); ok {
		t.Fatal("expected checksum mismatch to be rejected")
	}
}

func TestTryDecodeRejectsWrongLength(t *testing.T) {
	if _, ok := TryDecode(make([]byte, SizeSingle+1)); ok {
		t.Fatal("expected an unrecognised length to be rejected")
	}
}

func TestToBase58NonEmpty(t *testing.T) {
	var spend [32]byte
	a := New(0x01, 0x00, spend)
	if a.ToBase58() == "" {
		t.Fatal("expected a non-empty base58 rendering")
	}
	if a.String() != a.ToBase58() {
		t.Fatal("String and ToBase58 must agree")
	}
}
