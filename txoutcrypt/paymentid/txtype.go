// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paymentid

// TxType is a 4-bit enum tagging the kind of transaction a PaymentId's
// metadata belongs to. Values outside the 10 defined cases collapse to
// TxTypePaymentToOther (spec.md §4.3, §9); FromUint8(x) always masks
// to the low nibble first, so FromUint8(x) == FromUint8(x & 0b1111)
// for every x in 0..256.
type TxType byte

const (
	TxTypePaymentToOther TxType = iota
	TxTypePaymentToSelf
	TxTypeBurn
	TxTypeCoinSplit
	TxTypeCoinJoin
	TxTypeValidatorNodeRegistration
	TxTypeClaimAtomicSwap
	TxTypeHtlcAtomicSwapRefund
	TxTypeCodeTemplateRegistration
	TxTypeImportedUtxoNoneRewindable
)

// FromUint8 maps a raw byte to its TxType, masking to the low nibble
// first. Any nibble with no defined case maps to the default,
// TxTypePaymentToOther.
func FromUint8(value byte) TxType {
	switch value & 0x0f {
	case 0b0000:
		return TxTypePaymentToOther
	case 0b0001:
		return TxTypePaymentToSelf
	case 0b0010:
		return TxTypeBurn
	case 0b0011:
		return TxTypeCoinSplit
	case 0b0100:
		return TxTypeCoinJoin
	case 0b0101:
		return TxTypeValidatorNodeRegistration
	case 0b0110:
		return TxTypeClaimAtomicSwap
	case 0b0111:
		return TxTypeHtlcAtomicSwapRefund
	case 0b1000:
		return TxTypeCodeTemplateRegistration
	case 0b1001:
		return TxTypeImportedUtxoNoneRewindable
	default:
		return TxTypePaymentToOther
	}
}

// byteValue returns the raw 4-bit tag. The high nibble is always zero
// on emit, per spec.md §4.3.
func (t TxType) byteValue() byte {
	return byte(t) & 0x0f
}

// Byte returns the wire byte for t, used when serialising an Open or
// AddressAndData payment id.
func (t TxType) Byte() byte {
	return t.byteValue()
}

// String implements fmt.Stringer.
func (t TxType) String() string {
	switch t {
	case TxTypePaymentToOther:
		return "PaymentToOther"
	case TxTypePaymentToSelf:
		return "PaymentToSelf"
	case TxTypeBurn:
		return "Burn"
	case TxTypeCoinSplit:
		return "CoinSplit"
	case TxTypeCoinJoin:
		return "CoinJoin"
	case TxTypeValidatorNodeRegistration:
		return "ValidatorNodeRegistration"
	case TxTypeClaimAtomicSwap:
		return "ClaimAtomicSwap"
	case TxTypeHtlcAtomicSwapRefund:
		return "HtlcAtomicSwapRefund"
	case TxTypeCodeTemplateRegistration:
		return "CodeTemplateRegistration"
	case TxTypeImportedUtxoNoneRewindable:
		return "ImportedUtxoNoneRewindable"
	default:
		return "PaymentToOther"
	}
}
