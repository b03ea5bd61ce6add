// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"bytes"
	"fmt"

	"github.com/bureau-foundation/ledger/lib/codec"
)

// Tag is a record discriminator: the unsigned integer in element 0 of
// a tagged record's array.
type Tag uint64

// Descriptor declares the shape of a record variant.
type Descriptor struct {
	// Name identifies the variant in errors and logs.
	Name string

	// Tagged is set when element 0 is a discriminator.
	Tagged bool

	// Tag is the discriminator. Only meaningful when Tagged.
	Tag Tag

	// Fields names the required fields in encoding order.
	Fields []string
}

// Tagged returns the descriptor of a variant whose array starts with
// the discriminator tag.
func Tagged(name string, tag Tag, fields ...string) Descriptor {
	return Descriptor{Name: name, Tagged: true, Tag: tag, Fields: fields}
}

// Untagged returns the descriptor of a record whose array holds only
// its fields.
func Untagged(name string, fields ...string) Descriptor {
	return Descriptor{Name: name, Fields: fields}
}

// Required returns the minimum number of array elements a valid
// encoding has: the fields plus the discriminator, if any.
func (d Descriptor) Required() int {
	if d.Tagged {
		return len(d.Fields) + 1
	}
	return len(d.Fields)
}

// position returns the array index of field i.
func (d Descriptor) position(i int) int {
	if d.Tagged {
		return i + 1
	}
	return i
}

// Record is implemented by every record variant.
type Record interface {
	// Descriptor returns the variant's shape. It is the same for
	// every value of a variant type.
	Descriptor() Descriptor

	// Original returns the bytes the record was decoded from, when
	// it was decoded by a preserving Decoder.
	Original() Original

	// CanonicalCBOR derives the encoding from the current field
	// values, ignoring any Original.
	CanonicalCBOR() ([]byte, error)
}

// Original is a reference to the exact bytes a record was decoded
// from. The zero value is absent.
type Original struct {
	span codec.Span
}

// OriginalOf returns an Original referring to span.
func OriginalOf(span codec.Span) Original {
	return Original{span: span}
}

// Present reports whether the reference is set.
func (o Original) Present() bool {
	return !o.span.IsZero()
}

// Span returns the referenced range of the source buffer.
func (o Original) Span() codec.Span {
	return o.span
}

// Bytes returns a copy of the referenced bytes, or nil when absent.
func (o Original) Bytes() []byte {
	if !o.Present() {
		return nil
	}
	return bytes.Clone(o.span.Bytes())
}

// EffectiveEncode returns the bytes r should be transmitted, hashed or
// signed as: its Original verbatim when present, otherwise its
// canonical encoding. The Original is trusted; it is not compared
// against the current field values.
func EffectiveEncode(r Record) ([]byte, error) {
	if original := r.Original(); original.Present() {
		return original.Bytes(), nil
	}
	return r.CanonicalCBOR()
}

// Encode emits the canonical encoding of a record: an array holding
// the discriminator (if the descriptor is tagged) followed by fields
// in order. Each field is encoded by its own codec. A nil c uses the
// default codec.
func Encode(c *codec.Codec, descriptor Descriptor, fields ...any) ([]byte, error) {
	if len(fields) != len(descriptor.Fields) {
		return nil, fmt.Errorf("record: encoding %s: got %d fields, descriptor declares %d",
			descriptor.Name, len(fields), len(descriptor.Fields))
	}
	if c == nil {
		c = codec.Default()
	}

	items := make([]any, 0, descriptor.Required())
	if descriptor.Tagged {
		items = append(items, uint64(descriptor.Tag))
	}
	items = append(items, fields...)

	data, err := c.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("record: encoding %s: %w", descriptor.Name, err)
	}
	return data, nil
}
