// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package certificate

import (
	"bytes"
	"log/slog"

	"github.com/bureau-foundation/ledger/lib/codec"
	"github.com/bureau-foundation/ledger/lib/coin"
	"github.com/bureau-foundation/ledger/lib/credential"
	"github.com/bureau-foundation/ledger/lib/record"
)

// familyName names the certificate family in errors raised before the
// variant is known.
const familyName = "Certificate"

// Certificate is implemented by every certificate variant in this
// package. The set is closed: the unexported method keeps other
// packages from adding variants.
type Certificate interface {
	record.Record

	// Type returns the variant's discriminator.
	Type() Type

	// StakeCredential returns the credential the certificate acts on.
	StakeCredential() credential.Credential

	// MarshalCBOR returns the effective encoding: the original bytes
	// when the certificate was decoded by a preserving decoder,
	// otherwise the canonical encoding.
	MarshalCBOR() ([]byte, error)

	// Project returns the human-readable form.
	Project() Projection

	certificate()
}

// Projection is the diagnostic, human-readable form of a certificate.
// Amounts are decimal strings. It is never decoded.
type Projection struct {
	CertType        string                `json:"certType"`
	StakeCredential credential.Projection `json:"stakeCredential"`
	Deposit         string                `json:"deposit,omitempty"`
}

// Decode reads the discriminator of a certificate and decodes it as
// the matching variant. A nil decoder means record.Canonical.
// Discriminators of certificate types this package does not implement
// fail with a discriminator FormatError.
func Decode(decoder *record.Decoder, data []byte) (Certificate, error) {
	decoder = orCanonical(decoder)

	container, err := decoder.Open(data, familyName)
	if err != nil {
		return nil, err
	}
	tag, err := container.Tag()
	if err != nil {
		return nil, err
	}

	switch tag {
	case TypeStakeRegistration.Tag():
		return asCertificate(stakeRegistrationFrom(container))
	case TypeStakeDeregistration.Tag():
		return asCertificate(stakeDeregistrationFrom(container))
	case TypeRegistrationDeposit.Tag():
		return asCertificate(registrationDepositFrom(container))
	case TypeUnregistrationDeposit.Tag():
		return asCertificate(unregistrationDepositFrom(container))
	}

	if tag <= record.Tag(^uint8(0)) && Type(tag).Known() {
		return nil, container.Reject(codec.Errorf(familyName, codec.StepDiscriminator, "unsupported certificate type %s", Type(tag)))
	}
	return nil, container.Reject(codec.Errorf(familyName, codec.StepDiscriminator, "unknown certificate type %d", tag))
}

// Clone returns a certificate equal to c that carries no original
// bytes, so it always encodes canonically. Clone of nil is nil.
func Clone(c Certificate) Certificate {
	switch c := c.(type) {
	case StakeRegistration:
		return c.Clone()
	case StakeDeregistration:
		return c.Clone()
	case RegistrationDeposit:
		return c.Clone()
	case UnregistrationDeposit:
		return c.Clone()
	default:
		return nil
	}
}

// Equal reports whether a and b are the same variant with equal
// fields. Original bytes are not compared.
func Equal(a, b Certificate) bool {
	switch a := a.(type) {
	case StakeRegistration:
		b, ok := b.(StakeRegistration)
		return ok && a.Equal(b)
	case StakeDeregistration:
		b, ok := b.(StakeDeregistration)
		return ok && a.Equal(b)
	case RegistrationDeposit:
		b, ok := b.(RegistrationDeposit)
		return ok && a.Equal(b)
	case UnregistrationDeposit:
		b, ok := b.(UnregistrationDeposit)
		return ok && a.Equal(b)
	default:
		return false
	}
}

func orCanonical(decoder *record.Decoder) *record.Decoder {
	if decoder == nil {
		return record.Canonical
	}
	return decoder
}

// unmarshalPreserving decodes a certificate handed to UnmarshalCBOR by
// fxamacker/cbor. The data slice belongs to the caller's decode, so the
// record keeps a private copy as its original bytes.
func unmarshalPreserving[T any](data []byte, decode func(*record.Decoder, []byte) (T, error)) (T, error) {
	return decode(record.Preserving, bytes.Clone(data))
}

// credentialFields decodes certificates whose only field is the stake
// credential.
func credentialFields(container record.Container, descriptor record.Descriptor) (credential.Credential, record.Original, error) {
	fields, err := container.Expect(descriptor)
	if err != nil {
		return credential.Credential{}, record.Original{}, err
	}
	var stakeCredential credential.Credential
	if err := fields.Decode(0, &stakeCredential); err != nil {
		return credential.Credential{}, record.Original{}, err
	}
	return stakeCredential, fields.Original(), nil
}

// depositFields decodes certificates carrying a stake credential and
// an amount.
func depositFields(container record.Container, descriptor record.Descriptor) (credential.Credential, coin.Coin, record.Original, error) {
	fields, err := container.Expect(descriptor)
	if err != nil {
		return credential.Credential{}, coin.Coin{}, record.Original{}, err
	}
	var stakeCredential credential.Credential
	if err := fields.Decode(0, &stakeCredential); err != nil {
		return credential.Credential{}, coin.Coin{}, record.Original{}, err
	}
	var deposit coin.Coin
	if err := fields.Decode(1, &deposit); err != nil {
		return credential.Credential{}, coin.Coin{}, record.Original{}, err
	}
	return stakeCredential, deposit, fields.Original(), nil
}

// logAttrs renders a projection as structured log attributes.
func logAttrs(p Projection) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("cert_type", p.CertType),
		slog.String("stake_credential_type", p.StakeCredential.Type),
		slog.String("stake_credential_hash", p.StakeCredential.Hash),
	}
	if p.Deposit != "" {
		attrs = append(attrs, slog.String("deposit", p.Deposit))
	}
	return attrs
}

// asCertificate widens a variant result without turning a failed
// decode into a non-nil interface.
func asCertificate[T Certificate](c T, err error) (Certificate, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
