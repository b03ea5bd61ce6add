// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package witness implements verification-key witnesses: the Ed25519
// signatures attached to a transaction. A [VKeyWitness] is the untagged
// record [vkey, signature], a 32-byte verification key followed by a
// 64-byte signature over the transaction body hash.
//
// Witnesses travel in sets. [DecodeSet] accepts a plain array or one
// wrapped in CBOR tag 258 (the set tag) and, with a preserving
// record.Decoder, gives every witness its own reference into the
// shared input buffer so each one replays its exact bytes.
package witness
