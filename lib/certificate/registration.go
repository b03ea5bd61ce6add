// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package certificate

import (
	"encoding/json"
	"log/slog"

	"github.com/bureau-foundation/ledger/lib/credential"
	"github.com/bureau-foundation/ledger/lib/record"
)

var stakeRegistrationDescriptor = record.Tagged("StakeRegistration",
	TypeStakeRegistration.Tag(), "stakeCredential")

// StakeRegistration registers a stake credential under the
// pre-Conway rules, where the deposit is implied by the protocol
// parameters. Encoded as [0, stake_credential].
type StakeRegistration struct {
	stakeCredential credential.Credential
	original        record.Original
}

// NewStakeRegistration returns a registration certificate.
func NewStakeRegistration(stakeCredential credential.Credential) StakeRegistration {
	return StakeRegistration{stakeCredential: stakeCredential}
}

// DecodeStakeRegistration decodes a registration certificate. A nil
// decoder means record.Canonical.
func DecodeStakeRegistration(decoder *record.Decoder, data []byte) (StakeRegistration, error) {
	container, err := orCanonical(decoder).Open(data, stakeRegistrationDescriptor.Name)
	if err != nil {
		return StakeRegistration{}, err
	}
	return stakeRegistrationFrom(container)
}

func stakeRegistrationFrom(container record.Container) (StakeRegistration, error) {
	stakeCredential, original, err := credentialFields(container, stakeRegistrationDescriptor)
	if err != nil {
		return StakeRegistration{}, err
	}
	return StakeRegistration{stakeCredential: stakeCredential, original: original}, nil
}

func (StakeRegistration) certificate() {}

// Type returns TypeStakeRegistration.
func (StakeRegistration) Type() Type { return TypeStakeRegistration }

// Descriptor returns the record shape of the variant.
func (StakeRegistration) Descriptor() record.Descriptor { return stakeRegistrationDescriptor }

// StakeCredential returns the registered credential.
func (s StakeRegistration) StakeCredential() credential.Credential { return s.stakeCredential }

// Original returns the bytes the certificate was decoded from, if kept.
func (s StakeRegistration) Original() record.Original { return s.original }

// CanonicalCBOR encodes the certificate from its fields.
func (s StakeRegistration) CanonicalCBOR() ([]byte, error) {
	return record.Encode(nil, stakeRegistrationDescriptor, s.stakeCredential)
}

// MarshalCBOR returns the effective encoding.
func (s StakeRegistration) MarshalCBOR() ([]byte, error) {
	return record.EffectiveEncode(s)
}

// UnmarshalCBOR decodes the certificate, keeping its original bytes.
func (s *StakeRegistration) UnmarshalCBOR(data []byte) error {
	decoded, err := unmarshalPreserving(data, DecodeStakeRegistration)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// Clone returns an equal certificate without original bytes.
func (s StakeRegistration) Clone() StakeRegistration {
	return NewStakeRegistration(s.stakeCredential)
}

// Equal reports whether s and other carry the same credential.
func (s StakeRegistration) Equal(other StakeRegistration) bool {
	return s.stakeCredential.Equal(other.stakeCredential)
}

// Project returns the human-readable form.
func (s StakeRegistration) Project() Projection {
	return Projection{CertType: s.Type().String(), StakeCredential: s.stakeCredential.Project()}
}

// MarshalJSON encodes the projection.
func (s StakeRegistration) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Project())
}

// LogValue logs the projection.
func (s StakeRegistration) LogValue() slog.Value {
	return slog.GroupValue(logAttrs(s.Project())...)
}

var stakeDeregistrationDescriptor = record.Tagged("StakeDeregistration",
	TypeStakeDeregistration.Tag(), "stakeCredential")

// StakeDeregistration deregisters a stake credential under the
// pre-Conway rules. Encoded as [1, stake_credential].
type StakeDeregistration struct {
	stakeCredential credential.Credential
	original        record.Original
}

// NewStakeDeregistration returns a deregistration certificate.
func NewStakeDeregistration(stakeCredential credential.Credential) StakeDeregistration {
	return StakeDeregistration{stakeCredential: stakeCredential}
}

// DecodeStakeDeregistration decodes a deregistration certificate. A
// nil decoder means record.Canonical.
func DecodeStakeDeregistration(decoder *record.Decoder, data []byte) (StakeDeregistration, error) {
	container, err := orCanonical(decoder).Open(data, stakeDeregistrationDescriptor.Name)
	if err != nil {
		return StakeDeregistration{}, err
	}
	return stakeDeregistrationFrom(container)
}

func stakeDeregistrationFrom(container record.Container) (StakeDeregistration, error) {
	stakeCredential, original, err := credentialFields(container, stakeDeregistrationDescriptor)
	if err != nil {
		return StakeDeregistration{}, err
	}
	return StakeDeregistration{stakeCredential: stakeCredential, original: original}, nil
}

func (StakeDeregistration) certificate() {}

// Type returns TypeStakeDeregistration.
func (StakeDeregistration) Type() Type { return TypeStakeDeregistration }

// Descriptor returns the record shape of the variant.
func (StakeDeregistration) Descriptor() record.Descriptor { return stakeDeregistrationDescriptor }

// StakeCredential returns the deregistered credential.
func (s StakeDeregistration) StakeCredential() credential.Credential { return s.stakeCredential }

// Original returns the bytes the certificate was decoded from, if kept.
func (s StakeDeregistration) Original() record.Original { return s.original }

// CanonicalCBOR encodes the certificate from its fields.
func (s StakeDeregistration) CanonicalCBOR() ([]byte, error) {
	return record.Encode(nil, stakeDeregistrationDescriptor, s.stakeCredential)
}

// MarshalCBOR returns the effective encoding.
func (s StakeDeregistration) MarshalCBOR() ([]byte, error) {
	return record.EffectiveEncode(s)
}

// UnmarshalCBOR decodes the certificate, keeping its original bytes.
func (s *StakeDeregistration) UnmarshalCBOR(data []byte) error {
	decoded, err := unmarshalPreserving(data, DecodeStakeDeregistration)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// Clone returns an equal certificate without original bytes.
func (s StakeDeregistration) Clone() StakeDeregistration {
	return NewStakeDeregistration(s.stakeCredential)
}

// Equal reports whether s and other carry the same credential.
func (s StakeDeregistration) Equal(other StakeDeregistration) bool {
	return s.stakeCredential.Equal(other.stakeCredential)
}

// Project returns the human-readable form.
func (s StakeDeregistration) Project() Projection {
	return Projection{CertType: s.Type().String(), StakeCredential: s.stakeCredential.Project()}
}

// MarshalJSON encodes the projection.
func (s StakeDeregistration) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Project())
}

// LogValue logs the projection.
func (s StakeDeregistration) LogValue() slog.Value {
	return slog.GroupValue(logAttrs(s.Project())...)
}
