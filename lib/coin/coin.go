// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package coin provides Coin, the non-negative arbitrary-precision
// amount used for deposits, refunds and other ledger quantities.
//
// A Coin can only be constructed from a non-negative value: [New]
// and [Parse] fail with a [*codec.FormatError] on negative input, so
// a record holding a Coin never needs to re-check the sign. On the
// wire a Coin is a CBOR unsigned integer, or a tag 2 bignum when it
// does not fit in 64 bits.
package coin

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/bureau-foundation/ledger/lib/codec"
)

const typeName = "Coin"

// Coin is an immutable non-negative integer amount. The zero value is
// a valid amount of zero.
type Coin struct {
	// value is never mutated after construction and never handed
	// out; nil means zero.
	value *big.Int
}

// Zero is the zero amount.
var Zero = Coin{}

// New returns a Coin holding a copy of value. It fails if value is
// nil or negative.
func New(value *big.Int) (Coin, error) {
	if value == nil {
		return Coin{}, codec.Errorf(typeName, codec.StepValue, "nil amount")
	}
	if value.Sign() < 0 {
		return Coin{}, codec.Errorf(typeName, codec.StepValue, "negative amount %s", value)
	}
	return Coin{value: new(big.Int).Set(value)}, nil
}

// FromUint64 returns a Coin holding value.
func FromUint64(value uint64) Coin {
	return Coin{value: new(big.Int).SetUint64(value)}
}

// Parse returns the Coin for a base-10 string.
func Parse(decimal string) (Coin, error) {
	value, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		return Coin{}, codec.Errorf(typeName, codec.StepValue, "invalid decimal amount %q", decimal)
	}
	return New(value)
}

// Big returns the amount as a new big.Int the caller may modify.
func (c Coin) Big() *big.Int {
	if c.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.value)
}

// Uint64 returns the amount and whether it fits in a uint64.
func (c Coin) Uint64() (uint64, bool) {
	if c.value == nil {
		return 0, true
	}
	if !c.value.IsUint64() {
		return 0, false
	}
	return c.value.Uint64(), true
}

// IsZero reports whether the amount is zero.
func (c Coin) IsZero() bool {
	return c.value == nil || c.value.Sign() == 0
}

// Cmp compares two amounts and returns -1, 0 or +1.
func (c Coin) Cmp(other Coin) int {
	return c.Big().Cmp(other.Big())
}

// Equal reports whether two amounts are equal.
func (c Coin) Equal(other Coin) bool {
	return c.Cmp(other) == 0
}

// String returns the amount in base 10. This is also the projection
// used in diagnostic output, where decimal text avoids the precision
// loss of JSON numbers.
func (c Coin) String() string {
	if c.value == nil {
		return "0"
	}
	return c.value.String()
}

// LogValue logs the amount as decimal text.
func (c Coin) LogValue() slog.Value {
	return slog.StringValue(c.String())
}

// MarshalCBOR encodes the amount as the shortest CBOR integer, or a
// tag 2 bignum above 2^64-1.
func (c Coin) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(c.Big())
}

// UnmarshalCBOR decodes an unsigned integer or positive bignum.
// Negative integers, negative bignums and every other kind of item
// are rejected.
func (c *Coin) UnmarshalCBOR(data []byte) error {
	header, err := codec.ReadHeader(data)
	if err != nil {
		return codec.Wrap(typeName, codec.StepContainer, err)
	}

	switch {
	case header.Major == codec.MajorUnsigned:
	case header.Major == codec.MajorTag && header.Argument == 2:
	default:
		return codec.Errorf(typeName, codec.StepContainer, "expected unsigned integer, got %s", describe(header))
	}

	var value big.Int
	if err := codec.Unmarshal(data, &value); err != nil {
		return codec.Wrap(typeName, codec.StepContainer, err)
	}

	decoded, err := New(&value)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

func describe(header codec.Header) string {
	if header.Major == codec.MajorTag {
		return fmt.Sprintf("tag %d", header.Argument)
	}
	return header.Major.String()
}
