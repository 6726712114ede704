// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// minisol-cli exercises the ledger end to end: it seeds (or reloads) a
// ledger, creates one account of every kind, runs succeeding and failing
// transfers, prints per-category summaries, and persists the result.
package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"github.com/minisol/minisol/consts"
	"github.com/minisol/minisol/genesis"
	"github.com/minisol/minisol/ledger"
	"github.com/minisol/minisol/pubkey"
	"github.com/minisol/minisol/utils"
)

func main() {
	parser := argparse.NewParser(consts.Name+"-cli", "in-process account ledger demo")
	logLevel := parser.String("", "log-level", &argparse.Options{
		Default: "info",
		Help:    "minimum level written to the console and log file",
	})
	logDir := parser.String("", "log-dir", &argparse.Options{
		Default: "./logs",
		Help:    "directory for rolling log files",
	})

	runCmd := parser.NewCommand("run", "Run the demo workflow against a ledger file")
	ledgerPath := runCmd.String("l", "ledger", &argparse.Options{
		Default: "./temp/ledger.bin",
		Help:    "ledger blob to load if present and to save on exit",
	})
	genesisPath := runCmd.String("g", "genesis", &argparse.Options{
		Help: "YAML genesis used when the ledger file does not exist yet",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	log, err := newLogger(*logLevel, *logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to build logger: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if runCmd.Happened() {
		if err := run(log, *ledgerPath, *genesisPath); err != nil {
			log.Fatal("demo failed", zap.Error(err))
		}
	}
}

func run(log *zap.Logger, ledgerPath string, genesisPath string) error {
	gen := pubkey.NewRandomGenerator()

	l, err := openLedger(log, gen, ledgerPath, genesisPath)
	if err != nil {
		return err
	}

	// Pointers returned by AddAccount are only valid until the next
	// mutation, so keep account values and pubkeys in locals instead.
	aliceAccount := ledger.NewAccount(gen, ledger.NewWallet(10_000))
	if _, err := l.AddAccount(aliceAccount); err != nil {
		return err
	}
	bobAccount := ledger.NewAccount(gen, ledger.NewWallet(50_000_000))
	if _, err := l.AddAccount(bobAccount); err != nil {
		return err
	}
	programAccount := ledger.NewAccount(gen, ledger.NewProgram(true, []byte{0x01, 0x02}))
	if _, err := l.AddAccount(programAccount); err != nil {
		return err
	}
	alice, bob, program := aliceAccount.Pubkey, bobAccount.Pubkey, programAccount.Pubkey

	delegate := bob
	if _, err := l.AddAccount(ledger.NewAccount(gen, ledger.NewTokenAccount(program, 250_000, &delegate))); err != nil {
		return err
	}
	if _, err := l.AddAccount(ledger.NewAccount(gen, ledger.NewStake(alice, 40_000_000_000))); err != nil {
		return err
	}
	log.Info("accounts created", zap.Int("count", l.Len()))

	// Re-adding an existing account must be rejected without altering
	// the ledger; same for the malformed transfers below. Each failure
	// is reported and the demo continues.
	if _, err := l.AddAccount(aliceAccount); err != nil {
		log.Warn("add rejected", zap.Error(err))
	}
	if err := l.Transfer(alice, program, 1); err != nil {
		log.Warn("transfer rejected", zap.Error(err))
	}
	if err := l.Transfer(alice, bob, 1_000_000); err != nil {
		log.Warn("transfer rejected", zap.Error(err))
	}

	if err := l.Transfer(alice, bob, 100); err != nil {
		return err
	}
	log.Info("transfer complete",
		zap.String("from", alice),
		zap.String("to", bob),
		zap.Uint64("amount", 100),
	)

	for _, typeName := range []string{
		ledger.FilterWallet,
		ledger.FilterProgram,
		ledger.FilterTokenAccount,
		ledger.FilterStake,
	} {
		utils.Outf("{{bold}}%s accounts:{{/}}\n", typeName)
		for _, acc := range l.AccountsByType(typeName) {
			utils.Outf("{{cyan}}  %s{{/}}\n", acc.Summary())
		}
	}
	utils.Outf("{{green}}total supply:{{/}} %s %s\n",
		utils.FormatBalance(l.TotalSupply()), consts.Symbol)

	if err := l.Save(ledgerPath); err != nil {
		return err
	}
	log.Info("ledger saved", zap.String("path", ledgerPath), zap.Int("accounts", l.Len()))
	return nil
}

// openLedger reloads [ledgerPath] when it exists; otherwise it seeds a
// fresh ledger from the genesis file (or the default genesis).
func openLedger(log *zap.Logger, gen pubkey.Generator, ledgerPath string, genesisPath string) (*ledger.Ledger, error) {
	if _, err := os.Stat(ledgerPath); err == nil {
		l, err := ledger.Load(ledgerPath)
		if err != nil {
			return nil, err
		}
		log.Info("ledger loaded",
			zap.String("path", ledgerPath),
			zap.Int("accounts", l.Len()),
		)
		return l, nil
	}

	g := genesis.Default()
	if genesisPath != "" {
		var err error
		if g, err = genesis.Load(genesisPath); err != nil {
			return nil, err
		}
	}

	l := ledger.New()
	if err := g.InitializeLedger(gen, l); err != nil {
		return nil, err
	}
	log.Info("ledger initialized from genesis", zap.Int("allocations", l.Len()))
	return l, nil
}
