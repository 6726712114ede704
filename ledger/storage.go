// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/near/borsh-go"
)

// Save encodes the whole account collection into a single borsh blob and
// overwrites [path] with it, creating the parent directory if absent. Any
// failure surfaces as a [SerializationError].
func (l *Ledger) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SerializationError{Err: err}
		}
	}

	b, err := borsh.Serialize(l.accounts)
	if err != nil {
		return &SerializationError{Err: err}
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// Load reads a blob written by [Ledger.Save] and returns the ledger it
// encodes. The blob is all-or-nothing: a file that cannot be opened,
// read, or decoded yields a [SerializationError].
func Load(path string) (*Ledger, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	var accounts []Account
	if err := deserialize(&accounts, b); err != nil {
		return nil, err
	}
	return &Ledger{accounts: accounts}, nil
}

// deserialize decodes borsh bytes into [v], converting any failure
// (including reflection panics on malformed variant tags) into a
// [SerializationError]. The input must be exactly one encoded value:
// trailing bytes are rejected.
func deserialize(v interface{}, b []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SerializationError{Err: fmt.Errorf("malformed input: %v", r)}
		}
	}()
	if derr := borsh.Deserialize(v, b); derr != nil {
		return &SerializationError{Err: derr}
	}

	// borsh is deterministic, so re-encoding the decoded value measures
	// exactly how many input bytes the decode consumed.
	enc, derr := borsh.Serialize(reflect.ValueOf(v).Elem().Interface())
	if derr != nil {
		return &SerializationError{Err: derr}
	}
	if len(enc) != len(b) {
		return &SerializationError{
			Err: fmt.Errorf("unexpected %d trailing bytes", len(b)-len(enc)),
		}
	}
	return nil
}
