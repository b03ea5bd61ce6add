// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package witness

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/ledger/lib/codec"
	"github.com/bureau-foundation/ledger/lib/credential"
	"github.com/bureau-foundation/ledger/lib/hash"
	"github.com/bureau-foundation/ledger/lib/record"
)

var vkeyWitnessDescriptor = record.Untagged("VKeyWitness", "vkey", "signature")

// VKeyWitness is a signature together with the verification key that
// produced it. Encoded as [vkey, signature].
type VKeyWitness struct {
	vkey      hash.Hash32
	signature hash.Signature
	original  record.Original
}

// NewVKeyWitness returns a witness for an existing signature. The
// signature is not checked; see Verify.
func NewVKeyWitness(vkey hash.Hash32, signature hash.Signature) VKeyWitness {
	return VKeyWitness{vkey: vkey, signature: signature}
}

// Sign signs message with privateKey and returns the witness.
func Sign(privateKey ed25519.PrivateKey, message []byte) (VKeyWitness, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return VKeyWitness{}, fmt.Errorf("witness: private key has %d bytes, want %d", len(privateKey), ed25519.PrivateKeySize)
	}
	var witness VKeyWitness
	copy(witness.vkey[:], privateKey.Public().(ed25519.PublicKey))
	copy(witness.signature[:], ed25519.Sign(privateKey, message))
	return witness, nil
}

// DecodeVKeyWitness decodes a witness. A nil decoder means
// record.Canonical.
func DecodeVKeyWitness(decoder *record.Decoder, data []byte) (VKeyWitness, error) {
	return decodeSpan(orCanonical(decoder), codec.WholeSpan(data))
}

func decodeSpan(decoder *record.Decoder, span codec.Span) (VKeyWitness, error) {
	container, err := decoder.OpenSpan(span, vkeyWitnessDescriptor.Name)
	if err != nil {
		return VKeyWitness{}, err
	}
	fields, err := container.Expect(vkeyWitnessDescriptor)
	if err != nil {
		return VKeyWitness{}, err
	}

	var vkey hash.Hash32
	if err := fields.Decode(0, &vkey); err != nil {
		return VKeyWitness{}, err
	}
	var signature hash.Signature
	if err := fields.Decode(1, &signature); err != nil {
		return VKeyWitness{}, err
	}
	return VKeyWitness{vkey: vkey, signature: signature, original: fields.Original()}, nil
}

func orCanonical(decoder *record.Decoder) *record.Decoder {
	if decoder == nil {
		return record.Canonical
	}
	return decoder
}

// Descriptor returns the record shape of a witness.
func (VKeyWitness) Descriptor() record.Descriptor { return vkeyWitnessDescriptor }

// VKey returns the Ed25519 verification key.
func (w VKeyWitness) VKey() hash.Hash32 { return w.vkey }

// Signature returns the Ed25519 signature.
func (w VKeyWitness) Signature() hash.Signature { return w.signature }

// Original returns the bytes the witness was decoded from, if kept.
func (w VKeyWitness) Original() record.Original { return w.original }

// KeyHash returns the BLAKE2b-224 hash of the verification key, the
// digest a key-hash credential for this key carries.
func (w VKeyWitness) KeyHash() hash.Hash28 {
	return hash.Sum224(w.vkey[:])
}

// Credential returns the key-hash credential of the verification key.
func (w VKeyWitness) Credential() credential.Credential {
	return credential.FromVerificationKey(w.vkey)
}

// Verify reports whether the signature is valid for message under the
// witness's verification key.
func (w VKeyWitness) Verify(message []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(w.vkey[:]), message, w.signature[:])
}

// CanonicalCBOR encodes the witness from its fields.
func (w VKeyWitness) CanonicalCBOR() ([]byte, error) {
	return record.Encode(nil, vkeyWitnessDescriptor, w.vkey, w.signature)
}

// MarshalCBOR returns the effective encoding: the original bytes when
// the witness was decoded by a preserving decoder, otherwise the
// canonical encoding.
func (w VKeyWitness) MarshalCBOR() ([]byte, error) {
	return record.EffectiveEncode(w)
}

// UnmarshalCBOR decodes the witness, keeping a private copy of data as
// its original bytes.
func (w *VKeyWitness) UnmarshalCBOR(data []byte) error {
	decoded, err := DecodeVKeyWitness(record.Preserving, bytes.Clone(data))
	if err != nil {
		return err
	}
	*w = decoded
	return nil
}

// Clone returns an equal witness without original bytes.
func (w VKeyWitness) Clone() VKeyWitness {
	return NewVKeyWitness(w.vkey, w.signature)
}

// Equal reports whether w and other carry the same key and signature.
func (w VKeyWitness) Equal(other VKeyWitness) bool {
	return w.vkey == other.vkey && w.signature == other.signature
}

// Projection is the human-readable form of a witness.
type Projection struct {
	VKey      string `json:"vkey"`
	Signature string `json:"signature"`
}

// Project returns the human-readable form.
func (w VKeyWitness) Project() Projection {
	return Projection{VKey: w.vkey.String(), Signature: w.signature.String()}
}

// MarshalJSON encodes the projection.
func (w VKeyWitness) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Project())
}

// LogValue logs the verification key and its hash.
func (w VKeyWitness) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("vkey", w.vkey.String()),
		slog.String("key_hash", w.KeyHash().String()),
	)
}
