// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hash

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/bureau-foundation/ledger/lib/codec"
)

// Sizes of the fixed-length byte strings.
const (
	Size28        = 28
	Size32        = 32
	SignatureSize = 64
)

// Hash28 is a 28-byte digest: a verification key hash or script hash.
type Hash28 [Size28]byte

// Hash32 is a 32-byte value: a transaction hash or an Ed25519
// verification key.
type Hash32 [Size32]byte

// Signature is a 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// Sum224 returns the BLAKE2b-224 digest of data.
func Sum224(data []byte) Hash28 {
	// blake2b.New only fails for a bad size or an oversized key.
	hasher, err := blake2b.New(Size28, nil)
	if err != nil {
		panic("hash: blake2b-224 initialization failed: " + err.Error())
	}
	hasher.Write(data)

	var digest Hash28
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// Sum256 returns the BLAKE2b-256 digest of data.
func Sum256(data []byte) Hash32 {
	return Hash32(blake2b.Sum256(data))
}

// String returns the lowercase hex encoding.
func (h Hash28) String() string { return hex.EncodeToString(h[:]) }

// String returns the lowercase hex encoding.
func (h Hash32) String() string { return hex.EncodeToString(h[:]) }

// String returns the lowercase hex encoding.
func (s Signature) String() string { return hex.EncodeToString(s[:]) }

// ParseHash28 parses a 56-character hex string.
func ParseHash28(hexString string) (Hash28, error) {
	var h Hash28
	err := parseHex("Hash28", hexString, h[:])
	return h, err
}

// ParseHash32 parses a 64-character hex string.
func ParseHash32(hexString string) (Hash32, error) {
	var h Hash32
	err := parseHex("Hash32", hexString, h[:])
	return h, err
}

// ParseSignature parses a 128-character hex string.
func ParseSignature(hexString string) (Signature, error) {
	var s Signature
	err := parseHex("Signature", hexString, s[:])
	return s, err
}

func parseHex(typeName, hexString string, out []byte) error {
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return codec.Wrap(typeName, codec.StepValue, err)
	}
	if len(decoded) != len(out) {
		return codec.Errorf(typeName, codec.StepValue, "%d bytes, want %d", len(decoded), len(out))
	}
	copy(out, decoded)
	return nil
}

// MarshalCBOR encodes the hash as a byte string.
func (h Hash28) MarshalCBOR() ([]byte, error) { return codec.Marshal(h[:]) }

// MarshalCBOR encodes the hash as a byte string.
func (h Hash32) MarshalCBOR() ([]byte, error) { return codec.Marshal(h[:]) }

// MarshalCBOR encodes the signature as a byte string.
func (s Signature) MarshalCBOR() ([]byte, error) { return codec.Marshal(s[:]) }

// UnmarshalCBOR decodes a byte string of exactly 28 bytes.
func (h *Hash28) UnmarshalCBOR(data []byte) error {
	return unmarshalFixed("Hash28", data, h[:])
}

// UnmarshalCBOR decodes a byte string of exactly 32 bytes.
func (h *Hash32) UnmarshalCBOR(data []byte) error {
	return unmarshalFixed("Hash32", data, h[:])
}

// UnmarshalCBOR decodes a byte string of exactly 64 bytes.
func (s *Signature) UnmarshalCBOR(data []byte) error {
	return unmarshalFixed("Signature", data, s[:])
}

// unmarshalFixed decodes a CBOR byte string into out, requiring the
// decoded length to equal len(out). Text strings and tagged byte
// strings are rejected even though the generic decoder would coerce
// them into a []byte.
func unmarshalFixed(typeName string, data []byte, out []byte) error {
	header, err := codec.ReadHeader(data)
	if err != nil {
		return codec.Wrap(typeName, codec.StepContainer, err)
	}
	if header.Major != codec.MajorBytes {
		return codec.Errorf(typeName, codec.StepContainer, "expected byte string, got %s", header.Major)
	}

	var decoded []byte
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return codec.Wrap(typeName, codec.StepContainer, err)
	}
	if len(decoded) != len(out) {
		return codec.Errorf(typeName, codec.StepValue, "byte string is %d bytes, want %d", len(decoded), len(out))
	}

	copy(out, decoded)
	return nil
}
