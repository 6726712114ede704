// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pubkey

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"

	"github.com/mr-tron/base58"
)

const PubkeyLen = 32

// Generator produces globally-unique opaque account identifiers. Callers
// must not assume anything about the returned string beyond uniqueness
// and stability.
type Generator interface {
	Pubkey() string
}

var (
	_ Generator = (*randomGenerator)(nil)
	_ Generator = (*SequenceGenerator)(nil)
)

type randomGenerator struct{}

// NewRandomGenerator returns a Generator backed by crypto/rand. Keys are
// base58-encoded 32-byte values.
func NewRandomGenerator() Generator {
	return &randomGenerator{}
}

func (*randomGenerator) Pubkey() string {
	b := make([]byte, PubkeyLen)
	if _, err := rand.Read(b); err != nil {
		// entropy exhaustion is not a recoverable condition
		panic(err)
	}
	return base58.Encode(b)
}

// SequenceGenerator derives keys from a monotonic counter. Deterministic,
// intended for tests.
type SequenceGenerator struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) Pubkey() string {
	n := atomic.AddUint64(&g.counter, 1)
	b := make([]byte, PubkeyLen)
	binary.BigEndian.PutUint64(b, n)
	return base58.Encode(b)
}
