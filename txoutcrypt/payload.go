// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutcrypt

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/slog"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/veilcoin/veild/internal/zeroize"
	"github.com/veilcoin/veild/txoutcrypt/paymentid"
)

// Sizes from spec.md §6's byte-exact on-wire layout. The source this
// spec was distilled from (original_source/.../encrypted_data.rs)
// defines the same constant as
// SIZE_NONCE + SIZE_VALUE + SIZE_MASK + SIZE_TAG; spec.md's own prose
// elsewhere abbreviates this to "40", which undercounts the value-and-
// mask ciphertext region. This codec follows the byte-exact table and
// the original source: the static (zero-payment-id) size is 80 bytes.
const (
	sizeTag   = 16
	sizeNonce = chacha20poly1305.NonceSizeX // 24
	sizeValue = 8
	sizeMask  = 32

	// StaticPayloadSize is the size of an EncryptedPayload carrying
	// an Empty payment id: tag + nonce + ciphertext(value + mask).
	StaticPayloadSize = sizeTag + sizeNonce + sizeValue + sizeMask

	// MaxPayloadIDSize is the largest payment-id ciphertext region
	// the codec accepts.
	MaxPayloadIDSize = 256

	// MaxPayloadSize is the largest EncryptedPayload the codec will
	// produce or accept.
	MaxPayloadSize = StaticPayloadSize + MaxPayloadIDSize

	aad = "TARI_AAD_VALUE_AND_MASK_EXTEND_NONCE_VARIANT"
)

// EncryptionKey is the 32-byte scalar used, together with a
// Commitment, to derive the AEAD key. It is caller-owned; this
// package never stores or logs it beyond the single call it's passed
// to.
type EncryptionKey [32]byte

// Commitment is the 32-byte Pedersen commitment to (value, mask) that
// the ciphertext is bound to.
type Commitment [32]byte

// Mask is the 32-byte blinding scalar of a Pedersen commitment.
type Mask [32]byte

// EncryptedPayload is the on-wire blob produced by Encrypt:
// tag(16) || nonce(24) || ciphertext(value(8) + mask(32) + payment id).
// A payload returned by Encrypt, FromBytes, FromHex or DefaultPayload
// has a length in [StaticPayloadSize, MaxPayloadSize]; the zero value
// has no bytes.
type EncryptedPayload struct {
	data []byte
}

// DefaultPayload returns the all-zero, minimum-size payload. It is
// guaranteed not to decrypt successfully under any real key (its tag
// cannot authenticate real ciphertext except with vanishing
// probability), per spec.md §4.5. Go's ordinary zero value for
// EncryptedPayload has no bytes at all, so callers that want "the
// default payload" the original source's Default impl describes
// should call this constructor instead of relying on `var p
// EncryptedPayload`.
func DefaultPayload() EncryptedPayload {
	return EncryptedPayload{data: make([]byte, StaticPayloadSize)}
}

// PayloadIDSize returns the length of the payment-id ciphertext
// region, i.e. total length minus StaticPayloadSize.
func (p EncryptedPayload) PayloadIDSize() int {
	if len(p.data) < StaticPayloadSize {
		return 0
	}
	return len(p.data) - StaticPayloadSize
}

// Bytes returns a copy of p's wire bytes.
func (p EncryptedPayload) Bytes() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

// FromBytes parses b as an EncryptedPayload, validating its length.
func FromBytes(b []byte) (EncryptedPayload, error) {
	if len(b) < StaticPayloadSize {
		return EncryptedPayload{}, newError(KindIncorrectLength,
			"encrypted payload shorter than the minimum size", nil)
	}
	if len(b) > MaxPayloadSize {
		return EncryptedPayload{}, newError(KindIncorrectLength,
			"encrypted payload longer than the maximum size", nil)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return EncryptedPayload{data: out}, nil
}

// Encrypt builds an EncryptedPayload from its plaintext constituents,
// per spec.md §4.4. rng supplies the 24-byte random nonce; passing nil
// uses crypto/rand.Reader, the ambient cryptographic source spec.md §5
// describes. Consecutive calls with identical inputs produce different
// ciphertexts because the nonce differs every time.
func Encrypt(
	rng io.Reader,
	encryptionKey EncryptionKey,
	commitment Commitment,
	value uint64,
	mask Mask,
	id paymentid.PaymentId,
	log slog.Logger,
) (EncryptedPayload, error) {
	if log == nil {
		log = slog.Disabled
	}
	if rng == nil {
		rng = crand.Reader
	}

	idBytes := id.Encode()
	if len(idBytes) > MaxPayloadIDSize {
		log.Warnf("txoutcrypt: refusing to encrypt a %d-byte payment id (max %d)", len(idBytes), MaxPayloadIDSize)
		return EncryptedPayload{}, newError(KindIncorrectLength, "payment id too long", nil)
	}

	plaintext := make([]byte, sizeValue+sizeMask+len(idBytes))
	defer zeroize.Bytes(plaintext)

	binary.LittleEndian.PutUint64(plaintext[:sizeValue], value)
	copy(plaintext[sizeValue:sizeValue+sizeMask], mask[:])
	copy(plaintext[sizeValue+sizeMask:], idBytes)

	nonce := make([]byte, sizeNonce)
	if _, err := io.ReadFull(rng, nonce); err != nil {
		return EncryptedPayload{}, newError(KindEncryptionFailed, "nonce generation failed", err)
	}

	aeadKey, err := deriveAeadKey([32]byte(encryptionKey), [32]byte(commitment))
	if err != nil {
		return EncryptedPayload{}, err
	}
	defer zeroize.Bytes32(&aeadKey)

	aead, err := chacha20poly1305.NewX(aeadKey[:])
	if err != nil {
		return EncryptedPayload{}, newError(KindEncryptionFailed, "aead init failed", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, []byte(aad))
	tag := sealed[len(sealed)-sizeTag:]
	ciphertext := sealed[:len(sealed)-sizeTag]

	out := make([]byte, sizeTag+sizeNonce+len(ciphertext))
	copy(out[:sizeTag], tag)
	copy(out[sizeTag:sizeTag+sizeNonce], nonce)
	copy(out[sizeTag+sizeNonce:], ciphertext)

	if len(out) > MaxPayloadSize {
		log.Warnf("txoutcrypt: encrypted payload of %d bytes exceeds the maximum size", len(out))
		return EncryptedPayload{}, newError(KindIncorrectLength, "encrypted payload too long", nil)
	}

	log.Debugf("txoutcrypt: encrypted a %d-byte payment id into a %d-byte payload", len(idBytes), len(out))
	return EncryptedPayload{data: out}, nil
}

// Decrypt authenticates and decrypts payload, returning the value,
// mask, and payment id it carries. Per spec.md §9, a successful
// Decrypt is necessary but not sufficient evidence that encryptionKey
// is "the" key for commitment: this AEAD is not key-committing, and
// callers must cross-check via the commitment opening or other
// external context before treating a successful decrypt as proof of
// ownership.
func Decrypt(
	encryptionKey EncryptionKey,
	commitment Commitment,
	payload EncryptedPayload,
	log slog.Logger,
) (value uint64, mask Mask, id paymentid.PaymentId, err error) {
	if log == nil {
		log = slog.Disabled
	}

	data := payload.data
	if len(data) < StaticPayloadSize {
		return 0, Mask{}, paymentid.PaymentId{}, newError(KindIncorrectLength, "encrypted payload too short", nil)
	}

	tag := data[:sizeTag]
	nonce := data[sizeTag : sizeTag+sizeNonce]
	ciphertext := data[sizeTag+sizeNonce:]

	aeadKey, kdfErr := deriveAeadKey([32]byte(encryptionKey), [32]byte(commitment))
	if kdfErr != nil {
		return 0, Mask{}, paymentid.PaymentId{}, kdfErr
	}
	defer zeroize.Bytes32(&aeadKey)

	aead, aeadErr := chacha20poly1305.NewX(aeadKey[:])
	if aeadErr != nil {
		return 0, Mask{}, paymentid.PaymentId{}, newError(KindEncryptionFailed, "aead init failed", aeadErr)
	}

	sealed := make([]byte, 0, len(ciphertext)+sizeTag)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, openErr := aead.Open(nil, nonce, sealed, []byte(aad))
	if openErr != nil {
		// Authentication failure must not reveal which byte or field
		// caused the rejection, per spec.md §7.
		log.Debugf("txoutcrypt: decrypt authentication failed")
		return 0, Mask{}, paymentid.PaymentId{}, newError(KindEncryptionFailed, "authentication failed", openErr)
	}
	defer zeroize.Bytes(plaintext)

	value = binary.LittleEndian.Uint64(plaintext[:sizeValue])

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(plaintext[sizeValue : sizeValue+sizeMask])
	if overflow {
		return 0, Mask{}, paymentid.PaymentId{}, newError(KindByteArray, "mask is not a canonical scalar", nil)
	}
	copy(mask[:], plaintext[sizeValue:sizeValue+sizeMask])

	id = paymentid.Decode(plaintext[sizeValue+sizeMask:])

	log.Debugf("txoutcrypt: decrypted a %d-byte payload", len(data))
	return value, mask, id, nil
}
