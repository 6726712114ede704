// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "fmt"

// The ledger surfaces a closed set of failure kinds. All of them are
// recoverable: callers are expected to report and continue.

// AccountNotFoundError is returned when a referenced pubkey is absent
// from the ledger.
type AccountNotFoundError struct {
	Pubkey string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s was not found", e.Pubkey)
}

// InsufficientFundsError is returned when a transfer amount exceeds the
// source wallet's balance.
type InsufficientFundsError struct {
	Require   uint64
	Available uint64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds to make the transfer: require: %d, available: %d",
		e.Require,
		e.Available,
	)
}

// DuplicateAccountError is returned when adding an account whose pubkey
// is already present.
type DuplicateAccountError struct {
	Pubkey string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %s already exists", e.Pubkey)
}

// InvalidTransferError is returned when a transfer endpoint is not a
// Wallet account.
type InvalidTransferError struct {
	Reason string
}

func (e *InvalidTransferError) Error() string {
	return fmt.Sprintf("invalid transfer for: %s", e.Reason)
}

// SerializationError wraps any encode, decode, or I/O failure raised
// while persisting or parsing accounts.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed: %s", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
