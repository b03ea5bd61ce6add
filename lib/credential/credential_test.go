// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bureau-foundation/ledger/lib/codec"
	"github.com/bureau-foundation/ledger/lib/hash"
)

func testDigest() hash.Hash28 {
	var digest hash.Hash28
	for i := range digest {
		digest[i] = byte(0xa0 + i)
	}
	return digest
}

func TestCBORRoundtrip(t *testing.T) {
	for _, original := range []Credential{NewKeyHash(testDigest()), NewScript(testDigest())} {
		t.Run(original.Kind().String(), func(t *testing.T) {
			data, err := codec.Marshal(original)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}

			wantPrefix := []byte{0x82, byte(original.Kind()), 0x58, 0x1c}
			if !bytes.HasPrefix(data, wantPrefix) || len(data) != 4+28 {
				t.Errorf("encoding = %x, want prefix %x and 32 bytes", data, wantPrefix)
			}

			var decoded Credential
			if err := codec.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !decoded.Equal(original) {
				t.Errorf("roundtrip = %s, want %s", decoded, original)
			}
		})
	}
}

func TestKeyHashAndScriptDiffer(t *testing.T) {
	if NewKeyHash(testDigest()).Equal(NewScript(testDigest())) {
		t.Error("key-hash and script credentials with the same digest must not be equal")
	}
}

func TestFromVerificationKey(t *testing.T) {
	var vkey hash.Hash32
	vkey[0] = 1
	credential := FromVerificationKey(vkey)
	if credential.Kind() != KeyHash {
		t.Errorf("Kind = %s, want KeyHash", credential.Kind())
	}
	if credential.Hash() != hash.Sum224(vkey[:]) {
		t.Error("Hash should be the BLAKE2b-224 digest of the key")
	}
}

func TestUnmarshalRejects(t *testing.T) {
	digest := testDigest()
	valid, _ := codec.Marshal(NewKeyHash(digest))

	unknownKind := bytes.Clone(valid)
	unknownKind[1] = 0x02

	shortHash := append([]byte{0x82, 0x00, 0x58, 0x1b}, digest[:27]...)

	tests := map[string]struct {
		data []byte
		step codec.Step
	}{
		"not an array": {[]byte{0x00}, codec.StepContainer},
		"unknown kind": {unknownKind, codec.StepDiscriminator},
		"missing hash": {[]byte{0x81, 0x00}, codec.StepLength},
		"short hash":   {shortHash, codec.StepField},
		"text kind":    {append([]byte{0x82, 0x61, '0'}, valid[2:]...), codec.StepDiscriminator},
		"empty array":  {[]byte{0x80}, codec.StepLength},
		"truncated":    {valid[:10], codec.StepContainer},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var decoded Credential
			err := decoded.UnmarshalCBOR(test.data)
			var formatErr *codec.FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("UnmarshalCBOR(%x) = %v, want a FormatError", test.data, err)
			}
			if formatErr.Step != test.step {
				t.Errorf("step = %s, want %s (%v)", formatErr.Step, test.step, err)
			}
		})
	}
}

func TestUnmarshalToleratesTrailingElements(t *testing.T) {
	digest := testDigest()
	valid, _ := codec.Marshal(NewScript(digest))
	extended := append([]byte{0x83}, valid[1:]...)
	extended = append(extended, 0xf6)

	var decoded Credential
	if err := decoded.UnmarshalCBOR(extended); err != nil {
		t.Fatalf("UnmarshalCBOR: %v", err)
	}
	if !decoded.Equal(NewScript(digest)) {
		t.Errorf("decoded = %s", decoded)
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewScript(testDigest()))
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var projection Projection
	if err := json.Unmarshal(data, &projection); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if projection.Type != "Script" || projection.Hash != testDigest().String() {
		t.Errorf("projection = %+v", projection)
	}
}
