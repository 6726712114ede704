// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"time"

	"github.com/near/borsh-go"

	"github.com/minisol/minisol/consts"
	"github.com/minisol/minisol/pubkey"
	"github.com/minisol/minisol/utils"
)

// Account is the identity-bearing wrapper around one [AccountType].
//
// Owner is derived from the variant at creation and fixed thereafter.
// Lamports mirrors the wallet's inner balance and the two are updated in
// lockstep by [Ledger.Transfer]; for every other variant it is a static
// placeholder set once at construction.
type Account struct {
	Pubkey      string
	Owner       string
	Lamports    uint64
	AccountType AccountType
	CreatedAt   uint64
}

// NewAccount wraps [accountType] into an account keyed by a fresh
// identifier from [gen].
func NewAccount(gen pubkey.Generator, accountType AccountType) Account {
	return Account{
		Pubkey:      gen.Pubkey(),
		Owner:       accountType.owner(),
		Lamports:    accountType.balance(),
		AccountType: accountType,
		CreatedAt:   uint64(time.Now().Unix()),
	}
}

// IsAccountType reports whether a and [other] share a variant, ignoring
// payload values. Used for categorical filtering, never value equality.
func (a *Account) IsAccountType(other AccountType) bool {
	return a.AccountType.Enum == other.Enum
}

// Bytes returns the borsh encoding of the full account.
func (a *Account) Bytes() ([]byte, error) {
	b, err := borsh.Serialize(*a)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return b, nil
}

// ParseAccount decodes an account previously encoded with [Account.Bytes].
func ParseAccount(b []byte) (*Account, error) {
	acc := new(Account)
	if err := deserialize(acc, b); err != nil {
		return nil, err
	}
	return acc, nil
}

// Summary renders a one-line human-readable view of the account: an
// abbreviated pubkey, the variant label, and the lamports as SOL. Pubkeys
// too short to abbreviate are shown in full.
func (a *Account) Summary() string {
	key := a.Pubkey
	if len(key) >= 12 {
		key = key[:8] + ".." + key[len(key)-4:]
	}
	return fmt.Sprintf(
		"%s|%s|%s %s",
		key,
		a.AccountType,
		utils.FormatBalance(a.Lamports),
		consts.Symbol,
	)
}
