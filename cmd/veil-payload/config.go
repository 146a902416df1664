// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/veilcoin/veild/txoutcrypt"
	"github.com/veilcoin/veild/txoutcrypt/paymentid"
)

const (
	defaultLogFilename = "veil-payload.log"
	defaultLogLevel    = "info"
)

var (
	defaultHomeDir = filepath.Join(os.Getenv("HOME"), ".veil-payload")
)

// config defines the command-line options accepted by veil-payload, in
// the shape go-flags expects: exported fields with `long`/`short`/
// `description` struct tags.
type config struct {
	Action           string `short:"a" long:"action" description:"encrypt or decrypt" required:"true"`
	EncryptionKeyHex string `long:"key" description:"32-byte encryption key, hex encoded" required:"true"`
	CommitmentHex    string `long:"commitment" description:"32-byte Pedersen commitment, hex encoded" required:"true"`
	Value            uint64 `long:"value" description:"cleartext value, for --action=encrypt"`
	MaskHex          string `long:"mask" description:"32-byte blinding mask, hex encoded, for --action=encrypt"`
	PaymentID        string `long:"payment-id" description:"payment id for --action=encrypt: 'empty', 'u64:N', or 'open:TYPE:TEXT'" default:"empty"`
	PayloadHex       string `long:"payload" description:"hex-encoded EncryptedPayload, for --action=decrypt"`

	LogDir   string `long:"logdir" description:"directory to log to"`
	LogLevel string `long:"loglevel" description:"logging level: trace, debug, info, warn, error, critical" default:"info"`
}

// loadConfig parses the command line into a config, applying defaults
// and basic structural validation. It follows the same
// parse-then-validate split as the rest of the dcrd/exccd family's
// config.go files.
func loadConfig() (*config, error) {
	cfg := config{
		LogDir: filepath.Join(defaultHomeDir, "logs"),
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}

	cfg.Action = strings.ToLower(cfg.Action)
	if cfg.Action != "encrypt" && cfg.Action != "decrypt" {
		return nil, fmt.Errorf("--action must be 'encrypt' or 'decrypt', got %q", cfg.Action)
	}

	return &cfg, nil
}

func parseKey(s string) (txoutcrypt.EncryptionKey, error) {
	var k txoutcrypt.EncryptionKey
	if err := parseFixed32(s, k[:]); err != nil {
		return k, fmt.Errorf("--key: %w", err)
	}
	return k, nil
}

func parseCommitment(s string) (txoutcrypt.Commitment, error) {
	var c txoutcrypt.Commitment
	if err := parseFixed32(s, c[:]); err != nil {
		return c, fmt.Errorf("--commitment: %w", err)
	}
	return c, nil
}

func parseMask(s string) (txoutcrypt.Mask, error) {
	var m txoutcrypt.Mask
	if err := parseFixed32(s, m[:]); err != nil {
		return m, fmt.Errorf("--mask: %w", err)
	}
	return m, nil
}

func parseFixed32(s string, dst []byte) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("malformed hex: %w", err)
	}
	if len(b) != 32 {
		return fmt.Errorf("want 32 bytes, got %d", len(b))
	}
	copy(dst, b)
	return nil
}

// parsePaymentID interprets the --payment-id flag. It only covers the
// variants a command-line demo has any business constructing by hand;
// AddressAndData and TransactionInfo require an address blob this tool
// has no flag for.
func parsePaymentID(s string) (paymentid.PaymentId, error) {
	parts := strings.SplitN(s, ":", 3)
	switch parts[0] {
	case "empty", "":
		return paymentid.Empty(), nil
	case "u64":
		if len(parts) != 2 {
			return paymentid.PaymentId{}, fmt.Errorf("u64 payment id needs a value: u64:N")
		}
		v, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return paymentid.PaymentId{}, fmt.Errorf("bad u64 payment id: %w", err)
		}
		return paymentid.NewU64(v), nil
	case "open":
		if len(parts) != 3 {
			return paymentid.PaymentId{}, fmt.Errorf("open payment id needs a type and text: open:TYPE:TEXT")
		}
		txType, err := parseTxType(parts[1])
		if err != nil {
			return paymentid.PaymentId{}, err
		}
		return paymentid.NewOpen(txType, []byte(parts[2])), nil
	default:
		return paymentid.PaymentId{}, fmt.Errorf("unrecognized payment id form %q", s)
	}
}

func parseTxType(s string) (paymentid.TxType, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("tx type must be a small integer: %w", err)
	}
	return paymentid.FromUint8(byte(v)), nil
}

func parseLogLevel(s string) slog.Level {
	lvl, ok := slog.LevelFromString(s)
	if !ok {
		return slog.LevelInfo
	}
	return lvl
}
