// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

// Category filter vocabulary accepted by [Ledger.AccountsByType]. Any
// other string selects nothing.
const (
	FilterWallet       = "wallet"
	FilterProgram      = "program"
	FilterTokenAccount = "token_account"
	FilterStake        = "stake"
	FilterAll          = "all"
)

// Ledger owns an insertion-ordered collection of accounts, unique by
// pubkey. It is not safe for concurrent mutation; callers exposing it to
// multiple goroutines must serialize access externally.
//
// Pointers returned by [Ledger.AddAccount] and [Ledger.AccountsByType]
// are transient: they remain valid only until the next mutating call.
type Ledger struct {
	accounts []Account
}

func New() *Ledger {
	return &Ledger{}
}

// Len returns the number of stored accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// AddAccount appends [acc] and returns a pointer to the stored copy.
// Fails with [DuplicateAccountError] if the pubkey is already present,
// leaving the collection unchanged.
func (l *Ledger) AddAccount(acc Account) (*Account, error) {
	if l.accountExists(acc.Pubkey) {
		return nil, &DuplicateAccountError{Pubkey: acc.Pubkey}
	}
	l.accounts = append(l.accounts, acc)
	return &l.accounts[len(l.accounts)-1], nil
}

// AccountsByType returns the stored accounts whose variant matches
// [typeName], in insertion order. "all" selects everything; an
// unrecognized name selects nothing (an empty result, not an error).
func (l *Ledger) AccountsByType(typeName string) []*Account {
	var accounts []*Account
	for i := range l.accounts {
		acc := &l.accounts[i]
		var match bool
		switch typeName {
		case FilterWallet:
			match = acc.IsAccountType(NewWallet(0))
		case FilterProgram:
			match = acc.IsAccountType(NewProgram(false, nil))
		case FilterTokenAccount:
			match = acc.IsAccountType(NewTokenAccount("", 0, nil))
		case FilterStake:
			match = acc.IsAccountType(NewStake("", 0))
		case FilterAll:
			match = true
		}
		if match {
			accounts = append(accounts, acc)
		}
	}
	return accounts
}

// Transfer moves [amount] lamports from [from] to [to]. Both endpoints
// must exist and be wallets, and the source must hold at least [amount].
// Each check short-circuits; on any failure no mutation occurs.
func (l *Ledger) Transfer(from string, to string, amount uint64) error {
	if !l.accountExists(from) {
		return &AccountNotFoundError{Pubkey: from}
	}
	if !l.accountExists(to) {
		return &AccountNotFoundError{Pubkey: to}
	}

	fromAccount := l.findAccount(from)
	if fromAccount.AccountType.Enum != WalletVariant {
		return &InvalidTransferError{Reason: "key: " + from + " is not a Wallet"}
	}
	toAccount := l.findAccount(to)
	if toAccount.AccountType.Enum != WalletVariant {
		return &InvalidTransferError{Reason: "key: " + to + " is not a Wallet"}
	}

	if fromAccount.Lamports < amount {
		return &InsufficientFundsError{
			Require:   amount,
			Available: fromAccount.Lamports,
		}
	}

	// Lamports and the wallet's inner balance mirror each other; debit
	// and credit both together.
	fromAccount.Lamports -= amount
	fromAccount.AccountType.Wallet.Balance -= amount
	toAccount.Lamports += amount
	toAccount.AccountType.Wallet.Balance += amount
	return nil
}

// TotalSupply sums lamports across all accounts. An empty ledger reports 0.
func (l *Ledger) TotalSupply() uint64 {
	var total uint64
	for i := range l.accounts {
		total += l.accounts[i].Lamports
	}
	return total
}

func (l *Ledger) accountExists(key string) bool {
	return l.findAccount(key) != nil
}

func (l *Ledger) findAccount(key string) *Account {
	for i := range l.accounts {
		if l.accounts[i].Pubkey == key {
			return &l.accounts[i]
		}
	}
	return nil
}
