// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paymentid

import "encoding/binary"

// MetaBlockSize is the fixed on-wire size of a MetaBlock, per
// spec.md §4.2.
const MetaBlockSize = 10

const (
	maxFee          = 1<<32 - 1
	maxWeight       = 1<<16 - 1
	maxInputsCount  = 1<<15 - 1
	maxOutputsCount = 1<<12 - 1
)

// MetaBlock is the 10-byte bit-packed transaction metadata block
// carried by a PaymentId of kind TransactionInfo. Display/string
// forms may show out-of-range values as given; Pack() saturates each
// offending field to zero independently (spec.md §4.2, §7).
type MetaBlock struct {
	Fee            uint64
	Weight         uint64
	InputsCount    uint64
	OutputsCount   uint64
	SenderOneSided bool
	TxType         TxType
}

// Pack serialises m into its 10-byte big-endian wire form. Any field
// that exceeds its column's width is replaced with zero in the
// packed bytes; the other fields are unaffected (field-local
// saturation, spec.md §4.2).
func (m MetaBlock) Pack() [MetaBlockSize]byte {
	var out [MetaBlockSize]byte

	fee := m.Fee
	if fee > maxFee {
		fee = 0
	}
	binary.BigEndian.PutUint32(out[0:4], uint32(fee))

	weight := m.Weight
	if weight > maxWeight {
		weight = 0
	}
	binary.BigEndian.PutUint16(out[4:6], uint16(weight))

	inputsCount := m.InputsCount
	if inputsCount > maxInputsCount {
		inputsCount = 0
	}
	inputsPacked := uint16(inputsCount) & 0x7fff
	if m.SenderOneSided {
		inputsPacked |= 1 << 15
	}
	binary.BigEndian.PutUint16(out[6:8], inputsPacked)

	outputsCount := m.OutputsCount
	if outputsCount > maxOutputsCount {
		outputsCount = 0
	}
	outputsPacked := uint16(outputsCount) & 0x0fff
	outputsPacked |= uint16(m.TxType.byteValue()&0x0f) << 12
	binary.BigEndian.PutUint16(out[8:10], outputsPacked)

	return out
}

// UnpackMetaBlock is the inverse of Pack.
func UnpackMetaBlock(b [MetaBlockSize]byte) MetaBlock {
	fee := binary.BigEndian.Uint32(b[0:4])
	weight := binary.BigEndian.Uint16(b[4:6])

	inputsPacked := binary.BigEndian.Uint16(b[6:8])
	inputsCount := inputsPacked & 0x7fff
	senderOneSided := inputsPacked&(1<<15) != 0

	outputsPacked := binary.BigEndian.Uint16(b[8:10])
	outputsCount := outputsPacked & 0x0fff
	txType := FromUint8(byte(outputsPacked >> 12))

	return MetaBlock{
		Fee:            uint64(fee),
		Weight:         uint64(weight),
		InputsCount:    uint64(inputsCount),
		OutputsCount:   uint64(outputsCount),
		SenderOneSided: senderOneSided,
		TxType:         txType,
	}
}
