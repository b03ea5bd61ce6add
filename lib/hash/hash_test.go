// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hash

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/ledger/lib/codec"
)

func TestSum224(t *testing.T) {
	// BLAKE2b-224 of the empty string.
	want := "836cc68931c2e4e3e838602eca1902591d216837bafddfe6f0c8cb07"
	if got := Sum224(nil).String(); got != want {
		t.Errorf("Sum224(empty) = %s, want %s", got, want)
	}
}

func TestSum256(t *testing.T) {
	// BLAKE2b-256 of the empty string.
	want := "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if got := Sum256(nil).String(); got != want {
		t.Errorf("Sum256(empty) = %s, want %s", got, want)
	}
}

func TestHash28CBORRoundtrip(t *testing.T) {
	original := Sum224([]byte("stake key"))

	data, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Byte string header for 28 bytes: 0x58 0x1c.
	if !bytes.Equal(data[:2], []byte{0x58, 0x1c}) || len(data) != 30 {
		t.Errorf("encoding = %x, want 581c followed by 28 bytes", data)
	}

	var decoded Hash28
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %s, want %s", decoded, original)
	}
}

func TestSignatureCBORRoundtrip(t *testing.T) {
	var original Signature
	for i := range original {
		original[i] = byte(i)
	}

	data, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Signature
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %s, want %s", decoded, original)
	}
}

func TestUnmarshalWrongLength(t *testing.T) {
	data, err := codec.Marshal(make([]byte, 31))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Hash32
	err = decoded.UnmarshalCBOR(data)
	if err == nil {
		t.Fatal("UnmarshalCBOR should reject a 31-byte string for Hash32")
	}

	var formatErr *codec.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *codec.FormatError, got %T: %v", err, err)
	}
	if formatErr.Type != "Hash32" || formatErr.Step != codec.StepValue {
		t.Errorf("FormatError = %+v, want Type=Hash32 Step=value", formatErr)
	}
}

func TestUnmarshalRejectsNonByteString(t *testing.T) {
	tests := map[string][]byte{
		"text string": append([]byte{0x78, 0x1c}, bytes.Repeat([]byte{'a'}, 28)...),
		"integer":     {0x05},
		"tagged":      append([]byte{0xd8, 0x18, 0x58, 0x1c}, make([]byte, 28)...),
		"empty":       {},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var decoded Hash28
			err := decoded.UnmarshalCBOR(data)
			if !errors.Is(err, codec.ErrFormat) {
				t.Errorf("UnmarshalCBOR(%x) = %v, want a FormatError", data, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	digest := Sum224([]byte("x"))
	parsed, err := ParseHash28(digest.String())
	if err != nil {
		t.Fatalf("ParseHash28: %v", err)
	}
	if parsed != digest {
		t.Errorf("ParseHash28 = %s, want %s", parsed, digest)
	}

	if _, err := ParseHash32(strings.Repeat("ab", 31)); err == nil {
		t.Error("ParseHash32 should reject 31 bytes")
	}
	if _, err := ParseSignature("zz"); err == nil {
		t.Error("ParseSignature should reject invalid hex")
	}
}
