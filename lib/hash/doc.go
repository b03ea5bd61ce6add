// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hash provides the fixed-length byte strings that appear in
// ledger records: 28-byte credential digests ([Hash28]), 32-byte
// digests and verification keys ([Hash32]), and 64-byte Ed25519
// signatures ([Signature]).
//
// Each type encodes as a CBOR byte string and refuses to decode from
// anything else, including a byte string of the wrong length. The
// digests are BLAKE2b: [Sum224] is the credential digest of a
// verification key, [Sum256] the digest of a transaction body.
package hash
