// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/ledger/lib/codec"
	"github.com/bureau-foundation/ledger/lib/hash"
	"github.com/bureau-foundation/ledger/lib/record"
)

// Kind distinguishes key-hash credentials from script-hash credentials.
type Kind uint8

const (
	KeyHash Kind = 0
	Script  Kind = 1
)

func (k Kind) String() string {
	switch k {
	case KeyHash:
		return "KeyHash"
	case Script:
		return "Script"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

const typeName = "Credential"

var descriptors = [...]record.Descriptor{
	KeyHash: record.Tagged("KeyHashCredential", record.Tag(KeyHash), "hash"),
	Script:  record.Tagged("ScriptCredential", record.Tag(Script), "hash"),
}

// Credential is an immutable stake credential.
type Credential struct {
	kind   Kind
	digest hash.Hash28
}

// NewKeyHash returns the credential for a verification key hash.
func NewKeyHash(digest hash.Hash28) Credential {
	return Credential{kind: KeyHash, digest: digest}
}

// NewScript returns the credential for a script hash.
func NewScript(digest hash.Hash28) Credential {
	return Credential{kind: Script, digest: digest}
}

// FromVerificationKey returns the key-hash credential of an Ed25519
// verification key.
func FromVerificationKey(vkey hash.Hash32) Credential {
	return NewKeyHash(hash.Sum224(vkey[:]))
}

// Kind returns the credential kind.
func (c Credential) Kind() Kind { return c.kind }

// Hash returns the 28-byte digest.
func (c Credential) Hash() hash.Hash28 { return c.digest }

// Equal reports whether both kind and digest match.
func (c Credential) Equal(other Credential) bool {
	return c == other
}

func (c Credential) String() string {
	return c.kind.String() + ":" + c.digest.String()
}

// MarshalCBOR encodes the credential as [kind, hash].
func (c Credential) MarshalCBOR() ([]byte, error) {
	return record.Encode(nil, descriptors[c.kind], c.digest)
}

// UnmarshalCBOR decodes [kind, hash]. Unknown kinds are rejected.
func (c *Credential) UnmarshalCBOR(data []byte) error {
	container, err := record.Canonical.Open(data, typeName)
	if err != nil {
		return err
	}
	tag, err := container.Tag()
	if err != nil {
		return err
	}

	var kind Kind
	switch tag {
	case record.Tag(KeyHash):
		kind = KeyHash
	case record.Tag(Script):
		kind = Script
	default:
		return container.Reject(codec.Errorf(typeName, codec.StepDiscriminator, "unknown credential kind %d", tag))
	}

	fields, err := container.Expect(descriptors[kind])
	if err != nil {
		return err
	}
	var digest hash.Hash28
	if err := fields.Decode(0, &digest); err != nil {
		return err
	}

	*c = Credential{kind: kind, digest: digest}
	return nil
}

// Projection is the human-readable form of a credential.
type Projection struct {
	Type string `json:"type"`
	Hash string `json:"hash"`
}

// Project returns the human-readable form of the credential.
func (c Credential) Project() Projection {
	return Projection{Type: c.kind.String(), Hash: c.digest.String()}
}

// MarshalJSON encodes the projection.
func (c Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Project())
}

// LogValue logs the credential as a group of kind and hash.
func (c Credential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", c.kind.String()),
		slog.String("hash", c.digest.String()),
	)
}
