// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential implements stake credentials: the hash that
// identifies who controls a stake address. A credential is either the
// BLAKE2b-224 hash of a verification key or the hash of a script, and
// is encoded as the tagged record [kind, hash] with kind 0 for a key
// hash and 1 for a script hash.
package credential
