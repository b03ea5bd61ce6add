// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the ledger's CBOR encoding configuration and
// the low-level tools the record layer builds on.
//
// Ledger records travel as CBOR (RFC 8949). Every package encodes
// through the same [Codec] so that the canonical form of a record is
// identical no matter who produces it. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): smallest integer encoding,
// sorted map keys, no indefinite-length items. The decoder accepts any
// well-formed CBOR within the configured limits, including non-minimal
// integers and indefinite-length arrays. Ledger producers emit both,
// and signatures cover the bytes as emitted.
//
// For buffer-oriented operations with the default configuration:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// A [Codec] built with [New] applies the decode limits from a
// lib/config file instead.
//
// # Spans
//
// A [Span] names an exact byte range of a caller-owned buffer. The
// record layer uses spans to remember where a record came from so it
// can replay the original bytes instead of re-encoding. [Codec.ItemSpan]
// measures the CBOR item at an offset and [Codec.ElementSpans] measures
// each element of an array in place, without copying.
//
// # Errors
//
// Every structural or semantic decode failure in the ledger packages is
// a [*FormatError]. It names the record or field type, the validation
// step that failed, and for record fields the field position.
// errors.Is(err, [ErrFormat]) matches all of them.
package codec
