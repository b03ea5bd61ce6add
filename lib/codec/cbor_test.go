// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/bureau-foundation/ledger/lib/config"
)

// sampleEntry uses toarray so it encodes the way ledger records do:
// a fixed-order array rather than a map.
type sampleEntry struct {
	_      struct{} `cbor:",toarray"`
	Kind   uint64
	Digest []byte
	Amount *big.Int
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleEntry{
		Kind:   7,
		Digest: bytes.Repeat([]byte{0xab}, 28),
		Amount: big.NewInt(2_000_000),
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if data[0] != 0x83 {
		t.Errorf("expected a 3-element array header 0x83, got 0x%02x", data[0])
	}

	var decoded sampleEntry
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Kind != original.Kind || !bytes.Equal(decoded.Digest, original.Digest) || decoded.Amount.Cmp(original.Amount) != 0 {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalShortestIntegers(t *testing.T) {
	data, err := Marshal([]any{uint64(5), big.NewInt(5)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x82, 0x05, 0x05}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal = %x, want %x", data, want)
	}

	huge, _ := new(big.Int).SetString("18446744073709551616", 10) // 2^64
	data, err = Marshal(huge)
	if err != nil {
		t.Fatalf("Marshal(2^64): %v", err)
	}
	if data[0] != 0xc2 {
		t.Errorf("expected tag 2 bignum for 2^64, got initial byte 0x%02x", data[0])
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[uint64]string{3: "c", 1: "a", 2: "b"}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestUnmarshalAcceptsNonMinimalIntegers(t *testing.T) {
	var value uint64
	if err := Unmarshal([]byte{0x18, 0x05}, &value); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if value != 5 {
		t.Errorf("value = %d, want 5", value)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var value any
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &value); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestUnmarshalRejectsDuplicateMapKeys(t *testing.T) {
	// {1: 1, 1: 2}
	var value map[uint64]uint64
	if err := Unmarshal([]byte{0xa2, 0x01, 0x01, 0x01, 0x02}, &value); err == nil {
		t.Error("Unmarshal should reject duplicate map keys")
	}
}

func TestNewForbidIndefiniteLength(t *testing.T) {
	limits := config.DefaultDecodeLimits()
	limits.ForbidIndefiniteLength = true
	strict, err := New(limits)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	indefinite := []byte{0x9f, 0x01, 0x02, 0xff}
	if err := strict.Wellformed(indefinite); err == nil {
		t.Error("strict codec should reject indefinite-length array")
	}
	if err := Default().Wellformed(indefinite); err != nil {
		t.Errorf("default codec should accept indefinite-length array: %v", err)
	}
}

func TestNewMaxNestedLevels(t *testing.T) {
	limits := config.DefaultDecodeLimits()
	limits.MaxNestedLevels = 4
	shallow, err := New(limits)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// [[[[[1]]]]] nests five arrays deep.
	nested := []byte{0x81, 0x81, 0x81, 0x81, 0x81, 0x01}
	if err := shallow.Wellformed(nested); err == nil {
		t.Error("codec with MaxNestedLevels=4 should reject five nested arrays")
	}
}

func TestNewInvalidLimits(t *testing.T) {
	limits := config.DefaultDecodeLimits()
	limits.MaxArrayElements = 1
	if _, err := New(limits); err == nil {
		t.Fatal("New should reject MaxArrayElements below the decoder minimum")
	}
}

func TestDiagnose(t *testing.T) {
	notation, err := Diagnose([]byte{0x83, 0x07, 0x41, 0xab, 0x05})
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, "h'ab'") {
		t.Errorf("Diagnose = %q, expected it to contain h'ab'", notation)
	}
}
