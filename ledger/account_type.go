// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "github.com/near/borsh-go"

// AccountType variant discriminants. The set is closed: the borsh layout
// of the enum (1-byte tag + variant payload) depends on this ordering.
const (
	WalletVariant borsh.Enum = iota
	ProgramVariant
	TokenAccountVariant
	StakeVariant
)

// Wallet holds a spendable native balance. Wallets are the only accounts
// eligible as transfer endpoints.
type Wallet struct {
	Balance uint64
}

// Program holds executable code. Programs carry no natural balance; their
// lamports are a fixed rent-exemption placeholder.
type Program struct {
	Executable  bool
	ProgramData []byte
}

// TokenAccount holds a balance of a fungible token identified by [Mint].
type TokenAccount struct {
	Mint         string
	TokenBalance uint64
	Delegate     *string
}

// Stake holds an amount delegated to a validator.
type Stake struct {
	Validator    string
	StakedAmount uint64
}

// AccountType is a tagged union over the four account variants. Only the
// variant selected by [Enum] is populated (and serialized).
type AccountType struct {
	Enum         borsh.Enum `borsh_enum:"true"`
	Wallet       Wallet
	Program      Program
	TokenAccount TokenAccount
	Stake        Stake
}

func NewWallet(balance uint64) AccountType {
	return AccountType{
		Enum:   WalletVariant,
		Wallet: Wallet{Balance: balance},
	}
}

func NewProgram(executable bool, programData []byte) AccountType {
	return AccountType{
		Enum:    ProgramVariant,
		Program: Program{Executable: executable, ProgramData: programData},
	}
}

func NewTokenAccount(mint string, tokenBalance uint64, delegate *string) AccountType {
	return AccountType{
		Enum: TokenAccountVariant,
		TokenAccount: TokenAccount{
			Mint:         mint,
			TokenBalance: tokenBalance,
			Delegate:     delegate,
		},
	}
}

func NewStake(validator string, stakedAmount uint64) AccountType {
	return AccountType{
		Enum:  StakeVariant,
		Stake: Stake{Validator: validator, StakedAmount: stakedAmount},
	}
}

// owner returns the owner label derived from the variant: "system" for
// wallets, empty for everything else.
func (t AccountType) owner() string {
	if t.Enum == WalletVariant {
		return "system"
	}
	return ""
}

// balance returns the variant's intrinsic unit amount. Variants without a
// natural balance field (programs) report 1, the minimum lamports needed
// to stay rent exempt.
func (t AccountType) balance() uint64 {
	switch t.Enum {
	case WalletVariant:
		return t.Wallet.Balance
	case TokenAccountVariant:
		return t.TokenAccount.TokenBalance
	case StakeVariant:
		return t.Stake.StakedAmount
	default:
		return 1
	}
}

// String implements fmt.Stringer with the variant's display label.
func (t AccountType) String() string {
	switch t.Enum {
	case WalletVariant:
		return "Wallet"
	case ProgramVariant:
		return "Program"
	case TokenAccountVariant:
		return "Token Account"
	case StakeVariant:
		return "Stake"
	default:
		return "Unknown"
	}
}
