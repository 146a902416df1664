// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paymentid

import "testing"

func TestMetaBlockRoundTrip(t *testing.T) {
	m := MetaBlock{
		Fee:            123,
		Weight:         19000,
		InputsCount:    712,
		OutputsCount:   3,
		SenderOneSided: true,
		TxType:         TxTypeCoinJoin,
	}
	got := UnpackMetaBlock(m.Pack())
	if got != m {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, m)
	}
}

func TestMetaBlockMaxValues(t *testing.T) {
	m := MetaBlock{
		Fee:            maxFee,
		Weight:         maxWeight,
		InputsCount:    maxInputsCount,
		OutputsCount:   maxOutputsCount,
		SenderOneSided: true,
		TxType:         TxTypePaymentToOther,
	}
	got := UnpackMetaBlock(m.Pack())
	if got != m {
		t.Fatalf("max-value round trip mismatch: got %+v, want %+v", got, m)
	}
}

// TestMetaBlockSaturation mirrors spec.md's concrete scenario S6 and
// the original source's test_payment_id_max_meta_data_values: every
// field 100 over its max must zero independently, with the others
// unaffected.
func TestMetaBlockSaturation(t *testing.T) {
	m := MetaBlock{
		Fee:            maxFee + 100,
		Weight:         maxWeight + 100,
		InputsCount:    maxInputsCount + 100,
		OutputsCount:   maxOutputsCount + 100,
		SenderOneSided: true,
		TxType:         TxTypeBurn,
	}
	got := UnpackMetaBlock(m.Pack())
	want := MetaBlock{
		Fee:            0,
		Weight:         0,
		InputsCount:    0,
		OutputsCount:   0,
		SenderOneSided: true,
		TxType:         TxTypeBurn,
	}
	if got != want {
		t.Fatalf("saturation mismatch: got %+v, want %+v", got, want)
	}
}

func TestTxTypeWraparound(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := FromUint8(byte(x))
		want := FromUint8(byte(x) & 0x0f)
		if got != want {
			t.Fatalf("FromUint8(%d) = %v, want %v (masked value %v)", x, got, want, byte(x)&0x0f)
		}
	}
	if FromUint8(0b1010) != TxTypePaymentToOther {
		t.Fatalf("expected an undefined nibble to map to the default")
	}
}
