// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/binary"
	"fmt"
)

// Major is a CBOR major type (RFC 8949 §3.1).
type Major byte

const (
	MajorUnsigned Major = 0
	MajorNegative Major = 1
	MajorBytes    Major = 2
	MajorText     Major = 3
	MajorArray    Major = 4
	MajorMap      Major = 5
	MajorTag      Major = 6
	MajorSimple   Major = 7
)

var majorNames = [...]string{
	MajorUnsigned: "unsigned integer",
	MajorNegative: "negative integer",
	MajorBytes:    "byte string",
	MajorText:     "text string",
	MajorArray:    "array",
	MajorMap:      "map",
	MajorTag:      "tag",
	MajorSimple:   "simple value",
}

func (m Major) String() string {
	if int(m) < len(majorNames) {
		return majorNames[m]
	}
	return fmt.Sprintf("major(%d)", byte(m))
}

// Header is the initial byte and argument of a CBOR item.
type Header struct {
	Major Major

	// Argument is the count, length, tag number, or integer value
	// carried by the header. Zero for indefinite-length items.
	Argument uint64

	// Length is the number of bytes the header occupies, including
	// the initial byte.
	Length int

	// Indefinite is set for indefinite-length strings, arrays and maps.
	Indefinite bool
}

// breakByte terminates an indefinite-length item.
const breakByte = 0xff

// ReadHeader parses the header of the CBOR item at the start of data.
// It does not check that the item's content is present or well formed.
func ReadHeader(data []byte) (Header, error) {
	if len(data) == 0 {
		return Header{}, fmt.Errorf("codec: empty input: expected a CBOR item")
	}

	initial := data[0]
	header := Header{Major: Major(initial >> 5)}
	info := initial & 0x1f

	switch {
	case info < 24:
		header.Argument = uint64(info)
		header.Length = 1
	case info == 24:
		header.Length = 2
	case info == 25:
		header.Length = 3
	case info == 26:
		header.Length = 5
	case info == 27:
		header.Length = 9
	case info == 31:
		switch header.Major {
		case MajorBytes, MajorText, MajorArray, MajorMap:
			header.Indefinite = true
			header.Length = 1
			return header, nil
		default:
			return Header{}, fmt.Errorf("codec: indefinite length not allowed for %s", header.Major)
		}
	default:
		return Header{}, fmt.Errorf("codec: reserved additional information %d in initial byte 0x%02x", info, initial)
	}

	if len(data) < header.Length {
		return Header{}, fmt.Errorf("codec: truncated %s header: need %d bytes, have %d", header.Major, header.Length, len(data))
	}

	switch header.Length {
	case 2:
		header.Argument = uint64(data[1])
	case 3:
		header.Argument = uint64(binary.BigEndian.Uint16(data[1:3]))
	case 5:
		header.Argument = uint64(binary.BigEndian.Uint32(data[1:5]))
	case 9:
		header.Argument = binary.BigEndian.Uint64(data[1:9])
	}

	return header, nil
}
