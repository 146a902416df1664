// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutcrypt

import (
	"strings"
	"testing"

	"github.com/veilcoin/veild/txoutcrypt/paymentid"
)

func TestHexRoundTrip(t *testing.T) {
	key, commitment := testKeys(t)
	mask := testMask(0x88)

	original, err := Encrypt(nil, key, commitment, 42, mask, paymentid.Empty(), nil)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got, err := FromHex(original.ToHex())
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if got.ToHex() != original.ToHex() {
		t.Fatalf("hex round trip mismatch: got %s, want %s", got.ToHex(), original.ToHex())
	}
}

func TestFromHexRejectsMalformedInput(t *testing.T) {
	if _, err := FromHex("not hex at all!!"); err == nil {
		t.Fatal("expected an error for non-hex input")
	}
}

func TestStringTruncatesLongPayloads(t *testing.T) {
	d := DefaultPayload()
	s := d.String()
	full := d.ToHex()
	if len(full) <= 32 {
		t.Fatalf("test fixture too short to exercise truncation: %d hex chars", len(full))
	}
	if !strings.Contains(s, "..") {
		t.Fatalf("expected truncated display to contain '..', got %q", s)
	}
	if got, want := s, full[:16]+".."+full[len(full)-16:]; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStringShowsFullHexWhenShort(t *testing.T) {
	p := EncryptedPayload{data: make([]byte, 16)}
	if got, want := p.String(), p.ToHex(); got != want {
		t.Fatalf("String() = %q, want full hex %q", got, want)
	}
}
