// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package witness

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bureau-foundation/ledger/lib/codec"
	"github.com/bureau-foundation/ledger/lib/credential"
	"github.com/bureau-foundation/ledger/lib/hash"
	"github.com/bureau-foundation/ledger/lib/record"
)

var bodyHash = []byte("transaction body hash placeholder")

func testKey(seed byte) ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize))
}

func signed(t *testing.T, seed byte) VKeyWitness {
	t.Helper()
	witness, err := Sign(testKey(seed), bodyHash)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return witness
}

func requireStep(t *testing.T, err error, step codec.Step) *codec.FormatError {
	t.Helper()
	var formatErr *codec.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *codec.FormatError, got %T: %v", err, err)
	}
	if formatErr.Step != step {
		t.Fatalf("FormatError step = %s, want %s (%v)", formatErr.Step, step, err)
	}
	return formatErr
}

func TestSignAndVerify(t *testing.T) {
	witness := signed(t, 1)
	if !witness.Verify(bodyHash) {
		t.Error("Verify rejected its own signature")
	}
	if witness.Verify([]byte("another message")) {
		t.Error("Verify accepted a signature over a different message")
	}

	public := testKey(1).Public().(ed25519.PublicKey)
	vkey := witness.VKey()
	if !bytes.Equal(vkey[:], public) {
		t.Errorf("VKey = %s, want %x", vkey, public)
	}

	if _, err := Sign(ed25519.PrivateKey{1, 2, 3}, bodyHash); err == nil {
		t.Error("Sign accepted a short private key")
	}
}

func TestKeyHash(t *testing.T) {
	witness := signed(t, 2)
	vkey := witness.VKey()
	if witness.KeyHash() != hash.Sum224(vkey[:]) {
		t.Errorf("KeyHash = %s", witness.KeyHash())
	}
	if !witness.Credential().Equal(credential.NewKeyHash(witness.KeyHash())) {
		t.Errorf("Credential = %s", witness.Credential())
	}
}

func TestEncoding(t *testing.T) {
	witness := signed(t, 3)
	data, err := witness.MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}

	// [bytes(32), bytes(64)] with no discriminator.
	if len(data) != 1+2+32+2+64 {
		t.Fatalf("encoding has %d bytes: %x", len(data), data)
	}
	if data[0] != 0x82 || data[1] != 0x58 || data[2] != 32 || data[35] != 0x58 || data[36] != 64 {
		t.Errorf("encoding = %x", data)
	}

	decoded, err := DecodeVKeyWitness(nil, data)
	if err != nil {
		t.Fatalf("DecodeVKeyWitness: %v", err)
	}
	if !decoded.Equal(witness) {
		t.Errorf("decoded = %v, want %v", decoded.Project(), witness.Project())
	}
	if !decoded.Verify(bodyHash) {
		t.Error("decoded witness does not verify")
	}
}

func TestDecodeErrors(t *testing.T) {
	witness := signed(t, 4)
	data, err := witness.CanonicalCBOR()
	if err != nil {
		t.Fatalf("CanonicalCBOR: %v", err)
	}

	_, err = DecodeVKeyWitness(nil, data[:len(data)-1])
	requireStep(t, err, codec.StepContainer)

	_, err = DecodeVKeyWitness(nil, append([]byte{0x81}, data[1:35]...))
	requireStep(t, err, codec.StepLength)

	// The signature field shortened to 63 bytes.
	short := append([]byte{0x82}, data[1:35]...)
	short = append(short, 0x58, 63)
	short = append(short, bytes.Repeat([]byte{0xee}, 63)...)
	_, err = DecodeVKeyWitness(nil, short)
	formatErr := requireStep(t, err, codec.StepField)
	if formatErr.FieldName != "signature" || formatErr.Field != 1 {
		t.Errorf("failing field = %d (%s), want 1 (signature)", formatErr.Field, formatErr.FieldName)
	}
}

// nonMinimal re-encodes a witness with a two-byte length for the
// verification key, a valid but non-canonical form.
func nonMinimal(t *testing.T, witness VKeyWitness) []byte {
	t.Helper()
	canonical, err := witness.CanonicalCBOR()
	if err != nil {
		t.Fatalf("CanonicalCBOR: %v", err)
	}
	data := []byte{0x82, 0x59, 0x00, 32}
	return append(data, canonical[3:]...)
}

func TestPreservingReplayVerifies(t *testing.T) {
	witness := signed(t, 5)
	input := nonMinimal(t, witness)

	preserved, err := DecodeVKeyWitness(record.Preserving, input)
	if err != nil {
		t.Fatalf("DecodeVKeyWitness: %v", err)
	}
	if !preserved.Verify(bodyHash) {
		t.Error("preserved witness does not verify")
	}
	replayed, err := preserved.MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}
	if !bytes.Equal(replayed, input) {
		t.Errorf("replay = %x, want %x", replayed, input)
	}

	canonical, err := preserved.Clone().MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR of clone: %v", err)
	}
	if len(canonical) != len(input)-1 {
		t.Errorf("clone encodes as %x, want the canonical form", canonical)
	}
}

func TestDecodeSet(t *testing.T) {
	first := signed(t, 6)
	second := signed(t, 7)
	firstBytes := nonMinimal(t, first)
	secondBytes, err := second.CanonicalCBOR()
	if err != nil {
		t.Fatalf("CanonicalCBOR: %v", err)
	}

	array := append([]byte{0x82}, firstBytes...)
	array = append(array, secondBytes...)
	tagged := append([]byte{0xd9, 0x01, 0x02}, array...)
	indefinite := append([]byte{0x9f}, firstBytes...)
	indefinite = append(indefinite, secondBytes...)
	indefinite = append(indefinite, 0xff)

	for name, input := range map[string][]byte{
		"array":      array,
		"tagged":     tagged,
		"indefinite": indefinite,
	} {
		t.Run(name, func(t *testing.T) {
			witnesses, err := DecodeSet(record.Preserving, input)
			if err != nil {
				t.Fatalf("DecodeSet: %v", err)
			}
			if len(witnesses) != 2 {
				t.Fatalf("got %d witnesses, want 2", len(witnesses))
			}
			if !witnesses[0].Equal(first) || !witnesses[1].Equal(second) {
				t.Errorf("witnesses = %v, %v", witnesses[0].Project(), witnesses[1].Project())
			}

			for i, want := range [][]byte{firstBytes, secondBytes} {
				span := witnesses[i].Original().Span()
				if &span.Buffer()[0] != &input[0] {
					t.Errorf("witness %d does not refer into the input buffer", i)
				}
				if !bytes.Equal(span.Bytes(), want) {
					t.Errorf("witness %d original = %x, want %x", i, span.Bytes(), want)
				}
			}

			encoded, err := EncodeSet(witnesses)
			if err != nil {
				t.Fatalf("EncodeSet: %v", err)
			}
			if !bytes.Equal(encoded, array) {
				t.Errorf("EncodeSet = %x, want %x", encoded, array)
			}
		})
	}
}

func TestDecodeSetErrors(t *testing.T) {
	witness := signed(t, 8)
	data, err := witness.CanonicalCBOR()
	if err != nil {
		t.Fatalf("CanonicalCBOR: %v", err)
	}

	// A map is not a set.
	_, err = DecodeSet(nil, []byte{0xa0})
	requireStep(t, err, codec.StepContainer)

	// A tag other than 258 is not unwrapped.
	_, err = DecodeSet(nil, append([]byte{0xd9, 0x03, 0xe8, 0x81}, data...))
	requireStep(t, err, codec.StepContainer)

	// The second element is not a witness.
	_, err = DecodeSet(nil, append(append([]byte{0x82}, data...), 0x00))
	requireStep(t, err, codec.StepContainer)
}

func TestEncodeEmptySet(t *testing.T) {
	encoded, err := EncodeSet(nil)
	if err != nil {
		t.Fatalf("EncodeSet: %v", err)
	}
	if !bytes.Equal(encoded, []byte{0x80}) {
		t.Errorf("EncodeSet(nil) = %x, want 80", encoded)
	}
}

func TestProjection(t *testing.T) {
	witness := signed(t, 9)
	data, err := json.Marshal(witness)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	var projection Projection
	if err := json.Unmarshal(data, &projection); err != nil {
		t.Fatalf("json.Unmarshal(%s): %v", data, err)
	}
	if projection.VKey != witness.VKey().String() {
		t.Errorf("vkey = %q", projection.VKey)
	}
	if projection.Signature != witness.Signature().String() {
		t.Errorf("signature = %q", projection.Signature)
	}
}
