// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package witness

import (
	"fmt"

	"github.com/bureau-foundation/ledger/lib/codec"
	"github.com/bureau-foundation/ledger/lib/record"
)

// SetTag is the CBOR tag that optionally marks a witness array as a
// set.
const SetTag = 258

const setName = "VKeyWitnessSet"

// DecodeSet decodes an array of witnesses, optionally wrapped in
// SetTag. With a preserving decoder each witness refers to its own
// bytes inside data. The first invalid witness fails the whole set.
func DecodeSet(decoder *record.Decoder, data []byte) ([]VKeyWitness, error) {
	decoder = orCanonical(decoder)

	span := codec.WholeSpan(data)
	if header, err := codec.ReadHeader(data); err == nil && header.Major == codec.MajorTag && header.Argument == SetTag {
		span, err = codec.NewSpan(data, header.Length, len(data))
		if err != nil {
			return nil, codec.Wrap(setName, codec.StepContainer, err)
		}
	}

	container, err := decoder.OpenSpan(span, setName)
	if err != nil {
		return nil, err
	}

	witnesses := make([]VKeyWitness, 0, container.Len())
	for i := range container.Len() {
		witness, err := decodeSpan(decoder, container.Element(i))
		if err != nil {
			return nil, fmt.Errorf("witness %d: %w", i, err)
		}
		witnesses = append(witnesses, witness)
	}
	return witnesses, nil
}

// EncodeSet encodes witnesses as a plain array of their effective
// encodings, so preserved witnesses keep their original bytes.
func EncodeSet(witnesses []VKeyWitness) ([]byte, error) {
	items := make([]codec.RawMessage, len(witnesses))
	for i, witness := range witnesses {
		data, err := record.EffectiveEncode(witness)
		if err != nil {
			return nil, fmt.Errorf("witness %d: %w", i, err)
		}
		items[i] = data
	}
	return codec.Marshal(items)
}
