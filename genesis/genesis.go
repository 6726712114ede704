// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/minisol/minisol/ledger"
	"github.com/minisol/minisol/pubkey"
)

// Allocation describes one account to create when initializing a fresh
// ledger. Kind uses the ledger filter vocabulary; only the fields relevant
// to that kind are read.
type Allocation struct {
	Kind         string `yaml:"kind"`
	Balance      uint64 `yaml:"balance,omitempty"`
	Executable   bool   `yaml:"executable,omitempty"`
	ProgramData  []byte `yaml:"programData,omitempty"`
	Mint         string `yaml:"mint,omitempty"`
	TokenBalance uint64 `yaml:"tokenBalance,omitempty"`
	Delegate     string `yaml:"delegate,omitempty"`
	Validator    string `yaml:"validator,omitempty"`
	StakedAmount uint64 `yaml:"stakedAmount,omitempty"`
}

type Genesis struct {
	Allocations []*Allocation `yaml:"allocations"`
}

// Default returns a genesis with a single funded wallet (10 SOL).
func Default() *Genesis {
	return &Genesis{
		Allocations: []*Allocation{
			{Kind: ledger.FilterWallet, Balance: 10_000_000_000},
		},
	}
}

// Load reads a YAML genesis file.
func Load(path string) (*Genesis, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read genesis: %w", err)
	}
	g := new(Genesis)
	if err := yaml.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("unable to parse genesis: %w", err)
	}
	return g, nil
}

// InitializeLedger materializes every allocation into [l], keying each
// account with [gen]. Fails on the first unknown kind or duplicate key.
func (g *Genesis) InitializeLedger(gen pubkey.Generator, l *ledger.Ledger) error {
	for i, alloc := range g.Allocations {
		accountType, err := alloc.accountType()
		if err != nil {
			return fmt.Errorf("allocation %d: %w", i, err)
		}
		if _, err := l.AddAccount(ledger.NewAccount(gen, accountType)); err != nil {
			return fmt.Errorf("allocation %d: %w", i, err)
		}
	}
	return nil
}

func (a *Allocation) accountType() (ledger.AccountType, error) {
	switch a.Kind {
	case ledger.FilterWallet:
		return ledger.NewWallet(a.Balance), nil
	case ledger.FilterProgram:
		return ledger.NewProgram(a.Executable, a.ProgramData), nil
	case ledger.FilterTokenAccount:
		var delegate *string
		if a.Delegate != "" {
			d := a.Delegate
			delegate = &d
		}
		return ledger.NewTokenAccount(a.Mint, a.TokenBalance, delegate), nil
	case ledger.FilterStake:
		return ledger.NewStake(a.Validator, a.StakedAmount), nil
	default:
		return ledger.AccountType{}, fmt.Errorf("unknown account kind %q", a.Kind)
	}
}
