// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minisol/minisol/pubkey"
)

func TestLedgerSaveLoadRoundTrip(t *testing.T) {
	require := require.New(t)
	gen := pubkey.NewSequenceGenerator()
	l := New()

	delegate := gen.Pubkey()
	for _, accountType := range []AccountType{
		NewWallet(40_000_000_000),
		NewProgram(true, []byte{0xca, 0xfe}),
		NewTokenAccount(gen.Pubkey(), 250_000, &delegate),
		NewStake(gen.Pubkey(), 7_500),
	} {
		_, err := l.AddAccount(NewAccount(gen, accountType))
		require.NoError(err)
	}

	path := filepath.Join(t.TempDir(), "ledger.bin")
	require.NoError(l.Save(path))

	loaded, err := Load(path)
	require.NoError(err)
	require.Equal(l.Len(), loaded.Len())
	require.Equal(l.TotalSupply(), loaded.TotalSupply())

	original := l.AccountsByType(FilterAll)
	restored := loaded.AccountsByType(FilterAll)
	for i := range original {
		require.Equal(original[i].Summary(), restored[i].Summary())
		require.Equal(*original[i], *restored[i])
	}
}

func TestLedgerSaveCreatesParentDirectory(t *testing.T) {
	require := require.New(t)
	gen := pubkey.NewSequenceGenerator()
	l := New()
	_, err := l.AddAccount(NewAccount(gen, NewWallet(5)))
	require.NoError(err)

	path := filepath.Join(t.TempDir(), "nested", "deeper", "ledger.bin")
	require.NoError(l.Save(path))

	_, err = os.Stat(path)
	require.NoError(err)
}

func TestLoadMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	var serErr *SerializationError
	require.ErrorAs(err, &serErr)
	require.ErrorIs(err, os.ErrNotExist)
}

func TestLoadCorruptFile(t *testing.T) {
	require := require.New(t)

	// claims one account but truncates mid-record
	corrupt := []byte{0x01, 0x00, 0x00, 0x00, 0xff, 0xff}
	path := filepath.Join(t.TempDir(), "ledger.bin")
	require.NoError(os.WriteFile(path, corrupt, 0o644))

	_, err := Load(path)
	var serErr *SerializationError
	require.ErrorAs(err, &serErr)
}

func TestLoadTrailingGarbage(t *testing.T) {
	require := require.New(t)
	gen := pubkey.NewSequenceGenerator()
	l := New()
	_, err := l.AddAccount(NewAccount(gen, NewWallet(5)))
	require.NoError(err)

	path := filepath.Join(t.TempDir(), "ledger.bin")
	require.NoError(l.Save(path))

	// a valid blob followed by extra bytes is not a valid blob
	b, err := os.ReadFile(path)
	require.NoError(err)
	b = append(b, 0xde, 0xad, 0xbe, 0xef)
	require.NoError(os.WriteFile(path, b, 0o644))

	_, err = Load(path)
	var serErr *SerializationError
	require.ErrorAs(err, &serErr)
}

func TestLoadEmptyLedger(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "ledger.bin")
	require.NoError(New().Save(path))

	loaded, err := Load(path)
	require.NoError(err)
	require.Zero(loaded.Len())
	require.Zero(loaded.TotalSupply())
}
