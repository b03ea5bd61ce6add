// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/bureau-foundation/ledger/lib/config"
)

// Codec pairs an encoding mode and a decoding mode. It is immutable
// and safe for concurrent use.
type Codec struct {
	enc    cbor.EncMode
	dec    cbor.DecMode
	limits config.DecodeLimits
}

// std is the codec built from config.DefaultDecodeLimits. The
// package-level functions and the ready-made record decoders use it.
var std *Codec

func init() {
	var err error
	std, err = New(config.DefaultDecodeLimits())
	if err != nil {
		panic("codec: CBOR initialization failed: " + err.Error())
	}
}

// New builds a Codec whose decoder enforces limits. The encoder is
// always Core Deterministic Encoding; limits only constrain input.
func New(limits config.DecodeLimits) (*Codec, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	// Core Deterministic Encoding also selects the shortest form for
	// big.Int values: a value that fits in 64 bits is emitted as a
	// plain unsigned integer, larger values as a tag 2 bignum.
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("codec: CBOR encoder initialization failed: %w", err)
	}

	indefinite := cbor.IndefLengthAllowed
	if limits.ForbidIndefiniteLength {
		indefinite = cbor.IndefLengthForbidden
	}

	dec, err := cbor.DecOptions{
		// Duplicate map keys are an error, not last-one-wins.
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		IndefLength:      indefinite,
		MaxNestedLevels:  limits.MaxNestedLevels,
		MaxArrayElements: limits.MaxArrayElements,
		MaxMapPairs:      limits.MaxMapPairs,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("codec: CBOR decoder initialization failed: %w", err)
	}

	return &Codec{enc: enc, dec: dec, limits: limits}, nil
}

// Default returns the codec built from the default decode limits.
func Default() *Codec {
	return std
}

// Limits returns the decode limits this codec enforces.
func (c *Codec) Limits() config.DecodeLimits {
	return c.limits
}

// Marshal encodes v using Core Deterministic Encoding.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

// Unmarshal decodes data, which must hold exactly one CBOR item, into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

// UnmarshalFirst decodes the first CBOR item in data into v and
// returns the bytes that follow it.
func (c *Codec) UnmarshalFirst(data []byte, v any) ([]byte, error) {
	return c.dec.UnmarshalFirst(data, v)
}

// Wellformed reports whether data holds exactly one well-formed CBOR
// item within this codec's limits.
func (c *Codec) Wellformed(data []byte) error {
	return c.dec.Wellformed(data)
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return std.Marshal(v)
}

// Unmarshal decodes CBOR data into v with the default limits.
func Unmarshal(data []byte, v any) error {
	return std.Unmarshal(data, v)
}

// RawMessage is a raw encoded CBOR value. It implements
// cbor.Marshaler and cbor.Unmarshaler so it can be used to delay
// CBOR decoding or pre-encode CBOR output. Type alias so consumers
// import only lib/codec, not fxamacker/cbor directly.
type RawMessage = cbor.RawMessage

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// DiagnoseFirst returns the CBOR diagnostic notation for the first
// data item in data, along with the remaining unconsumed bytes.
func DiagnoseFirst(data []byte) (string, []byte, error) {
	return cbor.DiagnoseFirst(data)
}
