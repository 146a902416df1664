// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paymentid implements the PaymentIdCodec of spec.md §4.3: a
// six-variant tagged union whose wire encoding carries no leading
// discriminant byte. The decoder instead dispatches purely on the
// residual plaintext length left after the value and mask have been
// stripped, probing dual-key addresses before single-key ones. This
// ordering is part of the wire contract and must not be reordered.
package paymentid

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/veilcoin/veild/txoutcrypt/address"
)

const (
	sizeValue            = 8 // bytes in a LE uint64
	sizeU256             = 32
	sizeValueAndMetaData = sizeValue + MetaBlockSize
)

// Kind discriminates the six PaymentId variants.
type Kind int

const (
	KindEmpty Kind = iota
	KindU64
	KindU256
	KindOpen
	KindAddressAndData
	KindTransactionInfo
)

// PaymentId is the tagged union described in spec.md §4.3. Construct
// one with Empty, NewU64, NewU256, NewOpen, NewAddressAndData, or
// NewTransactionInfo; decode one from plaintext bytes with Decode.
type PaymentId struct {
	kind Kind

	u64  uint64
	u256 *uint256.Int

	txType   TxType
	userData []byte

	senderAddress address.Address

	recipientAddress address.Address
	senderOneSided   bool
	amount           uint64
	meta             MetaBlock
}

// Kind reports which of the six variants p is.
func (p PaymentId) Kind() Kind { return p.kind }

// Empty returns the PaymentId carrying no information; it is also the
// zero value of PaymentId.
func Empty() PaymentId { return PaymentId{kind: KindEmpty} }

// NewU64 returns a PaymentId carrying a plain 64-bit number.
func NewU64(v uint64) PaymentId { return PaymentId{kind: KindU64, u64: v} }

// NewU256 returns a PaymentId carrying a 256-bit number.
func NewU256(v *uint256.Int) PaymentId {
	return PaymentId{kind: KindU256, u256: new(uint256.Int).Set(v)}
}

// NewOpen returns a PaymentId the user optionally attaches free-form
// data to; txType is added by the system.
func NewOpen(txType TxType, userData []byte) PaymentId {
	return PaymentId{kind: KindOpen, txType: txType, userData: cloneOrNil(userData)}
}

// NewAddressAndData returns the variant the system generates for
// output UTXOs: an Open payment id plus the sender's address.
func NewAddressAndData(senderAddress address.Address, txType TxType, userData []byte) PaymentId {
	return PaymentId{
		kind:          KindAddressAndData,
		senderAddress: senderAddress,
		txType:        txType,
		userData:      cloneOrNil(userData),
	}
}

// NewTransactionInfo returns the variant the system generates for
// change outputs: the recipient's address plus a packed transaction
// metadata block.
func NewTransactionInfo(
	recipientAddress address.Address,
	senderOneSided bool,
	amount uint64,
	meta MetaBlock,
	userData []byte,
) PaymentId {
	meta.SenderOneSided = senderOneSided
	return PaymentId{
		kind:             KindTransactionInfo,
		recipientAddress: recipientAddress,
		senderOneSided:   senderOneSided,
		amount:           amount,
		meta:             meta,
		userData:         cloneOrNil(userData),
	}
}

// U64 returns the value carried by a KindU64 PaymentId.
func (p PaymentId) U64() uint64 { return p.u64 }

// U256 returns the value carried by a KindU256 PaymentId.
func (p PaymentId) U256() *uint256.Int { return p.u256 }

// SenderAddress returns the address carried by a KindAddressAndData
// PaymentId.
func (p PaymentId) SenderAddress() address.Address { return p.senderAddress }

// RecipientAddress returns the address carried by a
// KindTransactionInfo PaymentId.
func (p PaymentId) RecipientAddress() address.Address { return p.recipientAddress }

// SenderOneSided reports the flag carried by a KindTransactionInfo
// PaymentId.
func (p PaymentId) SenderOneSided() bool { return p.senderOneSided }

// Amount returns the amount carried by a KindTransactionInfo
// PaymentId.
func (p PaymentId) Amount() uint64 { return p.amount }

// Meta returns the metadata block carried by a KindTransactionInfo
// PaymentId.
func (p PaymentId) Meta() MetaBlock { return p.meta }

// TxType returns the embedded TxType for the three variants that carry
// one, or the default TxTypePaymentToOther for Empty, U64, and U256.
func (p PaymentId) TxType() TxType {
	switch p.kind {
	case KindOpen, KindAddressAndData:
		return p.txType
	case KindTransactionInfo:
		return p.meta.TxType
	default:
		return TxTypePaymentToOther
	}
}

// Size reports the wire length Encode will produce without building
// it, used by the caller to size a plaintext buffer up front.
func (p PaymentId) Size() int {
	switch p.kind {
	case KindEmpty:
		return 0
	case KindU64:
		return sizeValue
	case KindU256:
		return sizeU256
	case KindOpen:
		return len(p.userData) + 1
	case KindAddressAndData:
		return p.senderAddress.Size() + len(p.userData) + 1
	case KindTransactionInfo:
		return p.recipientAddress.Size() + sizeValueAndMetaData + len(p.userData)
	default:
		return 0
	}
}

// UserData returns the variant's raw user-facing payload: the
// little-endian value bytes for U64/U256, or the stored data slice for
// Open/AddressAndData/TransactionInfo (nil for Empty).
func (p PaymentId) UserData() []byte {
	switch p.kind {
	case KindEmpty:
		return nil
	case KindU64:
		b := make([]byte, sizeValue)
		binary.LittleEndian.PutUint64(b, p.u64)
		return b
	case KindU256:
		return u256ToLEBytes(p.u256)
	default:
		return p.userData
	}
}

// Encode serialises p to its wire form per spec.md §4.3's table. There
// is no outer length prefix: the caller is expected to know the total
// length from context (the residual plaintext region of an
// EncryptedPayload).
func (p PaymentId) Encode() []byte {
	switch p.kind {
	case KindEmpty:
		return nil
	case KindU64:
		b := make([]byte, sizeValue)
		binary.LittleEndian.PutUint64(b, p.u64)
		return b
	case KindU256:
		return u256ToLEBytes(p.u256)
	case KindOpen:
		out := make([]byte, 0, 1+len(p.userData))
		out = append(out, p.txType.Byte())
		out = append(out, p.userData...)
		return out
	case KindAddressAndData:
		addrBytes := p.senderAddress.Bytes()
		out := make([]byte, 0, len(addrBytes)+1+len(p.userData))
		out = append(out, addrBytes...)
		out = append(out, p.txType.Byte())
		out = append(out, p.userData...)
		return out
	case KindTransactionInfo:
		out := make([]byte, 0, p.Size())
		amountBytes := make([]byte, sizeValue)
		binary.LittleEndian.PutUint64(amountBytes, p.amount)
		out = append(out, amountBytes...)
		metaBytes := p.meta.Pack()
		out = append(out, metaBytes[:]...)
		out = append(out, p.recipientAddress.Bytes()...)
		out = append(out, p.userData...)
		return out
	default:
		return nil
	}
}

// Decode parses plaintext bytes into a PaymentId using the
// length-dispatch rules of spec.md §4.3: empty, 8, and 32-byte inputs
// are unambiguous; everything up to an address's single-key size is
// Open; above that, a dual-key address is tried before a single-key
// one, both directly and after an amount+metadata prefix, with Open
// as the final fallback.
func Decode(b []byte) PaymentId {
	n := len(b)
	switch {
	case n == 0:
		return Empty()
	case n == sizeValue:
		return NewU64(binary.LittleEndian.Uint64(b))
	case n == sizeU256:
		return NewU256(u256FromLEBytes(b))
	case n <= address.SizeSingle:
		return decodeOpen(b)
	}

	// AddressAndData: dual before single, per spec.md §4.3's ordering
	// requirement.
	if n > address.SizeDual {
		if addr, ok := address.TryDecode(b[:address.SizeDual]); ok {
			return NewAddressAndData(addr, FromUint8(b[address.SizeDual]), b[address.SizeDual+1:])
		}
	}
	if n > address.SizeSingle {
		if addr, ok := address.TryDecode(b[:address.SizeSingle]); ok {
			return NewAddressAndData(addr, FromUint8(b[address.SizeSingle]), b[address.SizeSingle+1:])
		}
	}

	// TransactionInfo: amount(8) + meta(10), then an address, dual
	// before single, with or without trailing user data.
	amount := binary.LittleEndian.Uint64(b[:sizeValue])
	var metaBytes [MetaBlockSize]byte
	copy(metaBytes[:], b[sizeValue:sizeValueAndMetaData])
	meta := UnpackMetaBlock(metaBytes)
	rest := b[sizeValueAndMetaData:]

	if addr, ok := address.TryDecode(rest); ok {
		return NewTransactionInfo(addr, meta.SenderOneSided, amount, meta, nil)
	}
	if len(rest) > address.SizeDual {
		if addr, ok := address.TryDecode(rest[:address.SizeDual]); ok {
			return NewTransactionInfo(addr, meta.SenderOneSided, amount, meta, rest[address.SizeDual:])
		}
	}
	if len(rest) > address.SizeSingle {
		if addr, ok := address.TryDecode(rest[:address.SizeSingle]); ok {
			return NewTransactionInfo(addr, meta.SenderOneSided, amount, meta, rest[address.SizeSingle:])
		}
	}

	// Final fallback, per spec.md §4.3.
	return decodeOpen(b)
}

func decodeOpen(b []byte) PaymentId {
	return NewOpen(FromUint8(b[0]), b[1:])
}

// AddSenderAddress promotes an Empty or Open PaymentId into
// AddressAndData, assigning senderAddress and, for Empty, the given
// txType (or TxTypePaymentToOther if nil). Any other variant is
// returned unchanged.
func AddSenderAddress(id PaymentId, senderAddress address.Address, txType *TxType) PaymentId {
	switch id.kind {
	case KindOpen:
		return NewAddressAndData(senderAddress, id.txType, id.userData)
	case KindEmpty:
		t := TxTypePaymentToOther
		if txType != nil {
			t = *txType
		}
		return NewAddressAndData(senderAddress, t, nil)
	default:
		return id
	}
}

// String implements fmt.Stringer, matching the original source's
// Display impl field for field; it never includes the value or mask
// the PaymentId rides alongside inside an EncryptedPayload.
func (p PaymentId) String() string {
	switch p.kind {
	case KindEmpty:
		return "None"
	case KindU64:
		return fmt.Sprintf("u64(%d)", p.u64)
	case KindU256:
		return fmt.Sprintf("u256(%s)", p.u256.String())
	case KindOpen:
		return fmt.Sprintf("type(%s), data(%s)", p.txType, stringifyBytes(p.userData))
	case KindAddressAndData:
		return fmt.Sprintf("sender_address(%s), type(%s), data(%s)",
			p.senderAddress.ToBase58(), p.txType, stringifyBytes(p.userData))
	case KindTransactionInfo:
		return fmt.Sprintf(
			"recipient_address(%s), sender_one_sided(%v), amount(%d), fee(%d), weight(%d), "+
				"inputs_count(%d), outputs_count(%d), type(%s), data(%s)",
			p.recipientAddress.ToBase58(), p.senderOneSided, p.amount, p.meta.Fee, p.meta.Weight,
			p.meta.InputsCount, p.meta.OutputsCount, p.meta.TxType, stringifyBytes(p.userData))
	default:
		return ""
	}
}

func stringifyBytes(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

func cloneOrNil(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func u256ToLEBytes(v *uint256.Int) []byte {
	be := v.Bytes32()
	out := make([]byte, sizeU256)
	for i := range be {
		out[sizeU256-1-i] = be[i]
	}
	return out
}

func u256FromLEBytes(b []byte) *uint256.Int {
	var be [sizeU256]byte
	for i := 0; i < sizeU256; i++ {
		be[i] = b[sizeU256-1-i]
	}
	v := new(uint256.Int)
	v.SetBytes(be[:])
	return v
}
