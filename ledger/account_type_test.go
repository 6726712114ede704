// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountTypeOwner(t *testing.T) {
	require := require.New(t)
	require.Equal("system", NewWallet(0).owner())
	require.Empty(NewProgram(true, nil).owner())
	require.Empty(NewTokenAccount("mint", 0, nil).owner())
	require.Empty(NewStake("validator", 0).owner())
}

func TestAccountTypeBalance(t *testing.T) {
	require := require.New(t)
	require.Equal(uint64(42), NewWallet(42).balance())
	require.Equal(uint64(7), NewTokenAccount("mint", 7, nil).balance())
	require.Equal(uint64(9), NewStake("validator", 9).balance())
	// programs have no natural balance field
	require.Equal(uint64(1), NewProgram(false, nil).balance())
}

func TestAccountTypeString(t *testing.T) {
	require := require.New(t)
	require.Equal("Wallet", NewWallet(0).String())
	require.Equal("Program", NewProgram(false, nil).String())
	require.Equal("Token Account", NewTokenAccount("", 0, nil).String())
	require.Equal("Stake", NewStake("", 0).String())
}

func TestAccountTypeMatchIgnoresPayload(t *testing.T) {
	require := require.New(t)

	rich := Account{AccountType: NewWallet(1_000_000)}
	require.True(rich.IsAccountType(NewWallet(0)))

	delegate := "somebody"
	token := Account{AccountType: NewTokenAccount("mintA", 5, &delegate)}
	require.True(token.IsAccountType(NewTokenAccount("mintB", 99, nil)))

	require.False(rich.IsAccountType(NewStake("", 0)))
	require.False(token.IsAccountType(NewProgram(false, nil)))
}
