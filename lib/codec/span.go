// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "fmt"

// Span is an exact byte range [start, end) of a buffer. The zero Span
// is absent: it refers to no buffer at all.
//
// A Span does not copy. The buffer it refers to must stay valid and
// unmodified for as long as the Span is in use; several spans may
// refer into the same buffer.
type Span struct {
	buf        []byte
	start, end int
}

// NewSpan returns the span [start, end) of buf.
func NewSpan(buf []byte, start, end int) (Span, error) {
	if buf == nil {
		return Span{}, fmt.Errorf("codec: span over nil buffer")
	}
	if start < 0 || start > end || end > len(buf) {
		return Span{}, fmt.Errorf("codec: span [%d, %d) out of range for %d-byte buffer", start, end, len(buf))
	}
	return Span{buf: buf, start: start, end: end}, nil
}

// WholeSpan returns the span covering all of buf. A nil buf yields
// the absent span.
func WholeSpan(buf []byte) Span {
	if buf == nil {
		return Span{}
	}
	return Span{buf: buf, start: 0, end: len(buf)}
}

// IsZero reports whether the span is absent.
func (s Span) IsZero() bool {
	return s.buf == nil
}

// Bytes returns the bytes the span covers. The result aliases the
// underlying buffer and has its capacity clipped, so appending to it
// never writes into the buffer. Nil for the absent span.
func (s Span) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf[s.start:s.end:s.end]
}

// Buffer returns the whole underlying buffer.
func (s Span) Buffer() []byte {
	return s.buf
}

// Start returns the offset of the first byte of the span.
func (s Span) Start() int {
	return s.start
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int {
	return s.end
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.end - s.start
}

// ItemSpan returns the span of the single CBOR item that starts at
// offset in buf. The item must be well formed within the codec's
// limits; bytes after it are ignored.
func (c *Codec) ItemSpan(buf []byte, offset int) (Span, error) {
	if offset < 0 || offset >= len(buf) {
		return Span{}, fmt.Errorf("codec: no CBOR item at offset %d of %d-byte buffer", offset, len(buf))
	}

	var raw RawMessage
	rest, err := c.dec.UnmarshalFirst(buf[offset:], &raw)
	if err != nil {
		return Span{}, fmt.Errorf("codec: item at offset %d: %w", offset, err)
	}

	return Span{buf: buf, start: offset, end: len(buf) - len(rest)}, nil
}

// ItemSpan returns the span of the CBOR item at offset in buf using
// the default limits.
func ItemSpan(buf []byte, offset int) (Span, error) {
	return std.ItemSpan(buf, offset)
}

// ElementSpans returns the span of every element of the CBOR array
// that span covers, each one a sub-range of the same buffer. Both
// definite and indefinite-length arrays are measured in place, so an
// element's span always holds the element's bytes exactly as they
// appeared in the input.
func (c *Codec) ElementSpans(span Span) ([]Span, error) {
	data := span.Bytes()
	header, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if header.Major != MajorArray {
		return nil, fmt.Errorf("codec: expected array, got %s", header.Major)
	}

	// Limit parsing to the span so a measurement can never run into
	// bytes that belong to whatever follows the array.
	bounded := span.buf[:span.end]
	offset := span.start + header.Length

	if header.Indefinite {
		var elements []Span
		for {
			if offset >= span.end {
				return nil, fmt.Errorf("codec: indefinite-length array missing break byte")
			}
			if bounded[offset] == breakByte {
				offset++
				break
			}
			element, err := c.ItemSpan(bounded, offset)
			if err != nil {
				return nil, fmt.Errorf("codec: array element %d: %w", len(elements), err)
			}
			elements = append(elements, element)
			offset = element.end
		}
		if offset != span.end {
			return nil, fmt.Errorf("codec: %d unexpected bytes after array", span.end-offset)
		}
		return elements, nil
	}

	remaining := uint64(span.end - offset)
	if header.Argument > remaining {
		// Every element takes at least one byte.
		return nil, fmt.Errorf("codec: array declares %d elements but only %d bytes remain", header.Argument, remaining)
	}

	elements := make([]Span, 0, int(header.Argument))
	for i := uint64(0); i < header.Argument; i++ {
		element, err := c.ItemSpan(bounded, offset)
		if err != nil {
			return nil, fmt.Errorf("codec: array element %d: %w", i, err)
		}
		elements = append(elements, element)
		offset = element.end
	}
	if offset != span.end {
		return nil, fmt.Errorf("codec: %d unexpected bytes after array", span.end-offset)
	}
	return elements, nil
}
