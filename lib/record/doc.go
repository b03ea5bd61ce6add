// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package record implements the encoding shared by every ledger record
// variant: a CBOR array whose first element is the variant's
// discriminator (for tagged variants) followed by the variant's fields
// in a fixed declared order.
//
// A variant declares itself with a [Descriptor] and delegates the
// structure to this package:
//
//	data, err := record.Encode(nil, descriptor, credential, deposit)
//
//	container, err := decoder.Open(data, descriptor.Name)
//	fields, err := container.Expect(descriptor)
//	err = fields.Decode(0, &credential)
//	err = fields.Decode(1, &deposit)
//
// Validation is fail-fast and runs in a fixed order: the input must be
// a well-formed array (step container), hold at least the required
// number of elements (step length), start with the declared
// discriminator (step discriminator), and then each field must decode
// through its own codec in order (step field). A discriminator
// mismatch is therefore reported before any field is looked at.
// Elements beyond the required count are accepted and ignored, so a
// producer can append fields without breaking existing readers.
//
// # Byte-exact replay
//
// A CBOR value can be encoded in more than one valid way (5 is both
// 0x05 and 0x18 0x05), and ledger signatures and hashes cover the
// bytes a producer actually emitted. A [Decoder] built with
// Options.Preserve records the exact span of input each record came
// from as an [Original]. [EffectiveEncode] returns those bytes verbatim
// when present and falls back to the canonical encoding otherwise.
// Records built from field values never carry an Original, and
// cloning a record drops it.
//
// Two ready-made decoders cover the common cases: [Canonical] and
// [Preserving]. Both use the default codec limits and discard logs.
package record
