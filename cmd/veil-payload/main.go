// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command veil-payload encrypts and decrypts confidential-output
// payloads from the command line, for manual testing and for
// demonstrating the txoutcrypt codec end to end.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/veilcoin/veild/txoutcrypt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return err
	}
	setLogLevels(parseLogLevel(cfg.LogLevel))

	switch cfg.Action {
	case "encrypt":
		return runEncrypt(cfg)
	case "decrypt":
		return runDecrypt(cfg)
	default:
		return fmt.Errorf("unreachable: unvalidated action %q", cfg.Action)
	}
}

func runEncrypt(cfg *config) error {
	key, err := parseKey(cfg.EncryptionKeyHex)
	if err != nil {
		return err
	}
	commitment, err := parseCommitment(cfg.CommitmentHex)
	if err != nil {
		return err
	}
	mask, err := parseMask(cfg.MaskHex)
	if err != nil {
		return err
	}
	id, err := parsePaymentID(cfg.PaymentID)
	if err != nil {
		return fmt.Errorf("--payment-id: %w", err)
	}

	payload, err := txoutcrypt.Encrypt(nil, key, commitment, cfg.Value, mask, id, txCryptLog)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	log.Infof("encrypted %d-byte payload", len(payload.Bytes()))
	fmt.Println(payload.ToHex())
	return nil
}

func runDecrypt(cfg *config) error {
	key, err := parseKey(cfg.EncryptionKeyHex)
	if err != nil {
		return err
	}
	commitment, err := parseCommitment(cfg.CommitmentHex)
	if err != nil {
		return err
	}
	if cfg.PayloadHex == "" {
		return fmt.Errorf("--payload is required for --action=decrypt")
	}

	payload, err := txoutcrypt.FromHex(cfg.PayloadHex)
	if err != nil {
		return fmt.Errorf("--payload: %w", err)
	}

	value, mask, id, err := txoutcrypt.Decrypt(key, commitment, payload, txCryptLog)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	log.Infof("decrypted %d-byte payload", len(payload.Bytes()))
	fmt.Printf("value:      %d\n", value)
	fmt.Printf("mask:       %x\n", mask)
	fmt.Printf("payment id: %s\n", id.String())
	return nil
}
