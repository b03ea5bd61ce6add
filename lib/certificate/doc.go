// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package certificate implements the stake certificate records carried
// in transaction bodies.
//
// Every certificate is a tagged record: a CBOR array whose element 0
// is the certificate [Type] followed by the variant's fields. The Type
// space is the closed Conway ledger enumeration; this package
// implements the stake registration family:
//
//   - [StakeRegistration]       [0, stake_credential]
//   - [StakeDeregistration]     [1, stake_credential]
//   - [RegistrationDeposit]     [7, stake_credential, deposit]
//   - [UnregistrationDeposit]   [8, stake_credential, deposit]
//
// [Decode] reads the discriminator and dispatches to the matching
// variant. Each variant also has its own decode function, which fails
// with a discriminator error when handed another variant's bytes.
//
// Records are immutable. A record decoded with a preserving
// record.Decoder re-encodes (MarshalCBOR) to exactly the bytes it was
// decoded from; [Clone] returns an equal record that re-encodes
// canonically.
package certificate
