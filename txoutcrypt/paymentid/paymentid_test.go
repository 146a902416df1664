// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paymentid

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"

	"github.com/veilcoin/veild/txoutcrypt/address"
)

func testAddresses(t *testing.T) (single, dual address.Address) {
	t.Helper()
	var spend, view [32]byte
	for i := range spend {
		spend[i] = byte(i)
		view[i] = byte(255 - i)
	}
	return address.New(0x01, 0x00, spend), address.NewDual(0x01, 0x00, spend, view)
}

func TestPaymentIdEncodeDecodeRoundTrip(t *testing.T) {
	single, dual := testAddresses(t)

	u256Val, err := uint256.FromDecimal("465465489789785458694894263185648978947864164681631")
	if err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}

	cases := []PaymentId{
		Empty(),
		NewU64(1),
		NewU64(156486946518564),
		NewU256(u256Val),
		NewOpen(TxTypePaymentToOther, bytes.Repeat([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 1)),
		NewOpen(TxTypePaymentToOther, bytes.Repeat([]byte{1}, 255)),
		NewAddressAndData(dual, TxTypePaymentToOther, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		NewAddressAndData(dual, TxTypePaymentToSelf, bytes.Repeat([]byte{1}, 188)),
		NewAddressAndData(single, TxTypeBurn, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		NewAddressAndData(single, TxTypeCoinSplit, bytes.Repeat([]byte{1}, 188)),
		NewTransactionInfo(single, false, 123456,
			MetaBlock{Fee: 123, Weight: 19000, InputsCount: 712, OutputsCount: 3, TxType: TxTypeCoinJoin}, nil),
		NewTransactionInfo(single, false, 123456,
			MetaBlock{Fee: 123, Weight: 19000, InputsCount: 712, OutputsCount: 3, TxType: TxTypeValidatorNodeRegistration},
			[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		NewTransactionInfo(dual, true, 123456,
			MetaBlock{Fee: 123, Weight: 19000, InputsCount: 712, OutputsCount: 3, TxType: TxTypeCoinSplit}, nil),
		NewTransactionInfo(dual, false, 123456,
			MetaBlock{Fee: 123, Weight: 19000, InputsCount: 712, OutputsCount: 3, TxType: TxTypeBurn},
			[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
	}

	for i, want := range cases {
		encoded := want.Encode()
		if len(encoded) != want.Size() {
			t.Fatalf("case %d: Size() = %d, but Encode() produced %d bytes", i, want.Size(), len(encoded))
		}
		got := Decode(encoded)
		if got.Kind() != want.Kind() {
			t.Fatalf("case %d: kind mismatch: got %v, want %v", i, got.Kind(), want.Kind())
		}
		gotEncoded := got.Encode()
		if !bytes.Equal(gotEncoded, encoded) {
			t.Fatalf("case %d: round trip mismatch:\ngot:  %s\nwant: %s",
				i, spew.Sdump(gotEncoded), spew.Sdump(encoded))
		}
	}
}

func TestPaymentIdDisplay(t *testing.T) {
	if got, want := Empty().String(), "None"; got != want {
		t.Fatalf("Empty: got %q, want %q", got, want)
	}
	if got, want := NewU64(1235678).String(), "u64(1235678)"; got != want {
		t.Fatalf("U64: got %q, want %q", got, want)
	}
	open := NewOpen(TxTypeCoinSplit, []byte("Hello World"))
	if got, want := open.String(), "type(CoinSplit), data(Hello World)"; got != want {
		t.Fatalf("Open: got %q, want %q", got, want)
	}
}

func TestPaymentIdSizeMatchesOriginalScenarioS3(t *testing.T) {
	// spec.md S3: Open with 11 bytes of user data has 12 plaintext
	// payment-id bytes.
	p := NewOpen(TxTypeCoinSplit, []byte("Hello World"))
	if p.Size() != 12 {
		t.Fatalf("Size() = %d, want 12", p.Size())
	}
}

func TestAddSenderAddressPromotesOpenAndEmpty(t *testing.T) {
	single, _ := testAddresses(t)

	open := NewOpen(TxTypeBurn, []byte("memo"))
	got := AddSenderAddress(open, single, nil)
	if got.Kind() != KindAddressAndData || got.TxType() != TxTypeBurn {
		t.Fatalf("expected Open to be promoted keeping its TxType, got %+v", got)
	}
	if !bytes.Equal(got.UserData(), []byte("memo")) {
		t.Fatalf("expected user data to survive promotion, got %q", got.UserData())
	}

	txType := TxTypeCoinJoin
	promoted := AddSenderAddress(Empty(), single, &txType)
	if promoted.Kind() != KindAddressAndData || promoted.TxType() != TxTypeCoinJoin {
		t.Fatalf("expected Empty to be promoted with the given TxType, got %+v", promoted)
	}

	u64 := NewU64(7)
	if unchanged := AddSenderAddress(u64, single, nil); unchanged.Kind() != KindU64 {
		t.Fatalf("expected U64 to be left unchanged, got %+v", unchanged)
	}
}
