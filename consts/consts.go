// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name   = "minisol"
	Symbol = "SOL"

	// Decimals is the number of fractional digits in the native unit
	// (1 SOL = 10^Decimals lamports).
	Decimals = 9
)
