// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package certificate

import (
	"encoding/json"
	"log/slog"

	"github.com/bureau-foundation/ledger/lib/coin"
	"github.com/bureau-foundation/ledger/lib/credential"
	"github.com/bureau-foundation/ledger/lib/record"
)

var registrationDepositDescriptor = record.Tagged("RegistrationDeposit",
	TypeRegistrationDeposit.Tag(), "stakeCredential", "deposit")

// RegistrationDeposit registers a stake credential and states the
// deposit paid for the registration. Encoded as
// [7, stake_credential, deposit].
type RegistrationDeposit struct {
	stakeCredential credential.Credential
	deposit         coin.Coin
	original        record.Original
}

// NewRegistrationDeposit returns a registration certificate. Both
// parameters are already validated by their own constructors, so
// construction cannot fail; a negative deposit is rejected by
// coin.New before it gets here.
func NewRegistrationDeposit(stakeCredential credential.Credential, deposit coin.Coin) RegistrationDeposit {
	return RegistrationDeposit{stakeCredential: stakeCredential, deposit: deposit}
}

// DecodeRegistrationDeposit decodes a registration certificate. A nil
// decoder means record.Canonical.
func DecodeRegistrationDeposit(decoder *record.Decoder, data []byte) (RegistrationDeposit, error) {
	container, err := orCanonical(decoder).Open(data, registrationDepositDescriptor.Name)
	if err != nil {
		return RegistrationDeposit{}, err
	}
	return registrationDepositFrom(container)
}

func registrationDepositFrom(container record.Container) (RegistrationDeposit, error) {
	stakeCredential, deposit, original, err := depositFields(container, registrationDepositDescriptor)
	if err != nil {
		return RegistrationDeposit{}, err
	}
	return RegistrationDeposit{stakeCredential: stakeCredential, deposit: deposit, original: original}, nil
}

func (RegistrationDeposit) certificate() {}

// Type returns TypeRegistrationDeposit.
func (RegistrationDeposit) Type() Type { return TypeRegistrationDeposit }

// Descriptor returns the record shape of the variant.
func (RegistrationDeposit) Descriptor() record.Descriptor { return registrationDepositDescriptor }

// StakeCredential returns the registered credential.
func (r RegistrationDeposit) StakeCredential() credential.Credential { return r.stakeCredential }

// Deposit returns the deposit paid.
func (r RegistrationDeposit) Deposit() coin.Coin { return r.deposit }

// Original returns the bytes the certificate was decoded from, if kept.
func (r RegistrationDeposit) Original() record.Original { return r.original }

// CanonicalCBOR encodes the certificate from its fields.
func (r RegistrationDeposit) CanonicalCBOR() ([]byte, error) {
	return record.Encode(nil, registrationDepositDescriptor, r.stakeCredential, r.deposit)
}

// MarshalCBOR returns the effective encoding.
func (r RegistrationDeposit) MarshalCBOR() ([]byte, error) {
	return record.EffectiveEncode(r)
}

// UnmarshalCBOR decodes the certificate, keeping its original bytes.
func (r *RegistrationDeposit) UnmarshalCBOR(data []byte) error {
	decoded, err := unmarshalPreserving(data, DecodeRegistrationDeposit)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

// Clone returns an equal certificate without original bytes.
func (r RegistrationDeposit) Clone() RegistrationDeposit {
	return NewRegistrationDeposit(r.stakeCredential, r.deposit)
}

// Equal reports whether the fields of r and other are equal.
func (r RegistrationDeposit) Equal(other RegistrationDeposit) bool {
	return r.stakeCredential.Equal(other.stakeCredential) && r.deposit.Equal(other.deposit)
}

// Project returns the human-readable form.
func (r RegistrationDeposit) Project() Projection {
	return Projection{
		CertType:        r.Type().String(),
		StakeCredential: r.stakeCredential.Project(),
		Deposit:         r.deposit.String(),
	}
}

// MarshalJSON encodes the projection.
func (r RegistrationDeposit) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Project())
}

// LogValue logs the projection.
func (r RegistrationDeposit) LogValue() slog.Value {
	return slog.GroupValue(logAttrs(r.Project())...)
}

var unregistrationDepositDescriptor = record.Tagged("UnregistrationDeposit",
	TypeUnregistrationDeposit.Tag(), "stakeCredential", "deposit")

// UnregistrationDeposit deregisters a stake credential and states the
// deposit refunded. Encoded as [8, stake_credential, deposit].
type UnregistrationDeposit struct {
	stakeCredential credential.Credential
	deposit         coin.Coin
	original        record.Original
}

// NewUnregistrationDeposit returns a deregistration certificate.
func NewUnregistrationDeposit(stakeCredential credential.Credential, deposit coin.Coin) UnregistrationDeposit {
	return UnregistrationDeposit{stakeCredential: stakeCredential, deposit: deposit}
}

// DecodeUnregistrationDeposit decodes a deregistration certificate. A
// nil decoder means record.Canonical.
func DecodeUnregistrationDeposit(decoder *record.Decoder, data []byte) (UnregistrationDeposit, error) {
	container, err := orCanonical(decoder).Open(data, unregistrationDepositDescriptor.Name)
	if err != nil {
		return UnregistrationDeposit{}, err
	}
	return unregistrationDepositFrom(container)
}

func unregistrationDepositFrom(container record.Container) (UnregistrationDeposit, error) {
	stakeCredential, deposit, original, err := depositFields(container, unregistrationDepositDescriptor)
	if err != nil {
		return UnregistrationDeposit{}, err
	}
	return UnregistrationDeposit{stakeCredential: stakeCredential, deposit: deposit, original: original}, nil
}

func (UnregistrationDeposit) certificate() {}

// Type returns TypeUnregistrationDeposit.
func (UnregistrationDeposit) Type() Type { return TypeUnregistrationDeposit }

// Descriptor returns the record shape of the variant.
func (UnregistrationDeposit) Descriptor() record.Descriptor { return unregistrationDepositDescriptor }

// StakeCredential returns the deregistered credential.
func (u UnregistrationDeposit) StakeCredential() credential.Credential { return u.stakeCredential }

// Deposit returns the deposit refunded.
func (u UnregistrationDeposit) Deposit() coin.Coin { return u.deposit }

// Original returns the bytes the certificate was decoded from, if kept.
func (u UnregistrationDeposit) Original() record.Original { return u.original }

// CanonicalCBOR encodes the certificate from its fields.
func (u UnregistrationDeposit) CanonicalCBOR() ([]byte, error) {
	return record.Encode(nil, unregistrationDepositDescriptor, u.stakeCredential, u.deposit)
}

// MarshalCBOR returns the effective encoding.
func (u UnregistrationDeposit) MarshalCBOR() ([]byte, error) {
	return record.EffectiveEncode(u)
}

// UnmarshalCBOR decodes the certificate, keeping its original bytes.
func (u *UnregistrationDeposit) UnmarshalCBOR(data []byte) error {
	decoded, err := unmarshalPreserving(data, DecodeUnregistrationDeposit)
	if err != nil {
		return err
	}
	*u = decoded
	return nil
}

// Clone returns an equal certificate without original bytes.
func (u UnregistrationDeposit) Clone() UnregistrationDeposit {
	return NewUnregistrationDeposit(u.stakeCredential, u.deposit)
}

// Equal reports whether the fields of u and other are equal.
func (u UnregistrationDeposit) Equal(other UnregistrationDeposit) bool {
	return u.stakeCredential.Equal(other.stakeCredential) && u.deposit.Equal(other.deposit)
}

// Project returns the human-readable form.
func (u UnregistrationDeposit) Project() Projection {
	return Projection{
		CertType:        u.Type().String(),
		StakeCredential: u.stakeCredential.Project(),
		Deposit:         u.deposit.String(),
	}
}

// MarshalJSON encodes the projection.
func (u UnregistrationDeposit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Project())
}

// LogValue logs the projection.
func (u UnregistrationDeposit) LogValue() slog.Value {
	return slog.GroupValue(logAttrs(u.Project())...)
}
