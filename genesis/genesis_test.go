// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minisol/minisol/ledger"
	"github.com/minisol/minisol/pubkey"
)

func TestDefaultGenesis(t *testing.T) {
	require := require.New(t)

	l := ledger.New()
	require.NoError(Default().InitializeLedger(pubkey.NewSequenceGenerator(), l))
	require.Equal(1, l.Len())
	require.Equal(uint64(10_000_000_000), l.TotalSupply())
	require.Len(l.AccountsByType(ledger.FilterWallet), 1)
}

func TestLoadGenesis(t *testing.T) {
	require := require.New(t)

	raw := `
allocations:
  - kind: wallet
    balance: 1000
  - kind: token_account
    mint: So11111111111111111111111111111111111111112
    tokenBalance: 5
    delegate: treasurer
  - kind: stake
    validator: validator-1
    stakedAmount: 300
  - kind: program
    executable: true
`
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(os.WriteFile(path, []byte(raw), 0o644))

	g, err := Load(path)
	require.NoError(err)
	require.Len(g.Allocations, 4)

	l := ledger.New()
	require.NoError(g.InitializeLedger(pubkey.NewSequenceGenerator(), l))
	require.Equal(4, l.Len())
	// 1000 + 5 + 300 + 1 (program placeholder)
	require.Equal(uint64(1_306), l.TotalSupply())

	tokens := l.AccountsByType(ledger.FilterTokenAccount)
	require.Len(tokens, 1)
	require.NotNil(tokens[0].AccountType.TokenAccount.Delegate)
	require.Equal("treasurer", *tokens[0].AccountType.TokenAccount.Delegate)
}

func TestLoadGenesisMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}

func TestInitializeLedgerUnknownKind(t *testing.T) {
	require := require.New(t)

	g := &Genesis{Allocations: []*Allocation{{Kind: "vault", Balance: 1}}}
	err := g.InitializeLedger(pubkey.NewSequenceGenerator(), ledger.New())
	require.ErrorContains(err, "unknown account kind")
}
