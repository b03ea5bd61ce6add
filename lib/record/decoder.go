// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"context"
	"encoding/hex"
	"log/slog"

	"github.com/bureau-foundation/ledger/lib/codec"
)

// Options configures a Decoder.
type Options struct {
	// Preserve makes decoded records remember the exact bytes they
	// were decoded from, so that EffectiveEncode replays them.
	Preserve bool

	// Codec supplies the CBOR decoding limits. Nil uses
	// codec.Default().
	Codec *codec.Codec

	// Logger receives a Debug record for every rejected input. Nil
	// discards.
	Logger *slog.Logger
}

// Decoder opens CBOR input as record containers. A Decoder is
// immutable and safe for concurrent use.
type Decoder struct {
	codec    *codec.Codec
	preserve bool
	logger   *slog.Logger
}

// Ready-made decoders with the default codec and no logging.
var (
	// Canonical decodes records without remembering their bytes;
	// re-encoding always derives the canonical form.
	Canonical = NewDecoder(Options{})

	// Preserving decodes records that replay their original bytes.
	Preserving = NewDecoder(Options{Preserve: true})
)

// NewDecoder returns a Decoder configured by options.
func NewDecoder(options Options) *Decoder {
	decoder := &Decoder{
		codec:    options.Codec,
		preserve: options.Preserve,
		logger:   options.Logger,
	}
	if decoder.codec == nil {
		decoder.codec = codec.Default()
	}
	if decoder.logger == nil {
		decoder.logger = slog.New(slog.DiscardHandler)
	}
	return decoder
}

// Preserves reports whether records decoded by d keep their original
// bytes.
func (d *Decoder) Preserves() bool {
	return d.preserve
}

// Codec returns the codec d decodes with.
func (d *Decoder) Codec() *codec.Codec {
	return d.codec
}

// Open checks that data is exactly one well-formed CBOR array and
// measures its elements. name identifies the expected record in
// errors; dispatching callers that do not know the variant yet pass a
// family name such as "Certificate".
func (d *Decoder) Open(data []byte, name string) (Container, error) {
	return d.OpenSpan(codec.WholeSpan(data), name)
}

// OpenSpan is Open for a record nested inside a larger buffer. The
// span must cover exactly one CBOR item. Records decoded from the
// container refer into span's buffer when d preserves bytes.
func (d *Decoder) OpenSpan(span codec.Span, name string) (Container, error) {
	data := span.Bytes()

	if err := d.codec.Wellformed(data); err != nil {
		return Container{}, d.reject(codec.Wrap(name, codec.StepContainer, err), data)
	}

	header, err := codec.ReadHeader(data)
	if err != nil {
		return Container{}, d.reject(codec.Wrap(name, codec.StepContainer, err), data)
	}
	if header.Major != codec.MajorArray {
		return Container{}, d.reject(codec.Errorf(name, codec.StepContainer, "expected array, got %s", header.Major), data)
	}

	elements, err := d.codec.ElementSpans(span)
	if err != nil {
		return Container{}, d.reject(codec.Wrap(name, codec.StepContainer, err), data)
	}

	return Container{decoder: d, name: name, span: span, elements: elements}, nil
}

// reject logs a decode failure and returns it.
func (d *Decoder) reject(err *codec.FormatError, data []byte) error {
	if d.logger.Enabled(context.Background(), slog.LevelDebug) {
		d.logger.Debug("rejected ledger record",
			"error", err,
			"input", describeInput(data),
		)
	}
	return err
}

// describeInput renders input for a log line: diagnostic notation when
// it parses, hex otherwise.
func describeInput(data []byte) string {
	const limit = 256
	if notation, _, err := codec.DiagnoseFirst(data); err == nil {
		if len(notation) > limit {
			return notation[:limit] + "..."
		}
		return notation
	}
	if len(data) > limit/2 {
		return hex.EncodeToString(data[:limit/2]) + "..."
	}
	return hex.EncodeToString(data)
}

// Container is a validated CBOR array whose elements have been
// measured but not decoded.
type Container struct {
	decoder  *Decoder
	name     string
	span     codec.Span
	elements []codec.Span
}

// Len returns the number of elements in the array.
func (c Container) Len() int {
	return len(c.elements)
}

// Span returns the bytes of the whole array.
func (c Container) Span() codec.Span {
	return c.span
}

// Element returns the span of element i.
func (c Container) Element(i int) codec.Span {
	return c.elements[i]
}

// Tag reads the discriminator in element 0 without checking anything
// else. Dispatchers use it to choose a variant before calling Expect.
func (c Container) Tag() (Tag, error) {
	return c.tag(c.name)
}

func (c Container) tag(name string) (Tag, error) {
	if len(c.elements) == 0 {
		return 0, c.decoder.reject(codec.Errorf(name, codec.StepLength, "empty array has no discriminator"), c.span.Bytes())
	}

	element := c.elements[0].Bytes()
	header, err := codec.ReadHeader(element)
	if err != nil {
		return 0, c.decoder.reject(codec.Wrap(name, codec.StepDiscriminator, err), c.span.Bytes())
	}
	if header.Major != codec.MajorUnsigned {
		return 0, c.decoder.reject(codec.Errorf(name, codec.StepDiscriminator, "expected unsigned integer, got %s", header.Major), c.span.Bytes())
	}
	return Tag(header.Argument), nil
}

// Reject reports a failure found by the caller after opening the
// container, such as a discriminator no variant claims. It logs err
// like every other rejection and returns it.
func (c Container) Reject(err *codec.FormatError) error {
	return c.decoder.reject(err, c.span.Bytes())
}

// Expect checks the container against descriptor: at least
// descriptor.Required() elements, then the discriminator. On success
// the returned Fields give access to the declared fields only;
// trailing elements are not reachable.
func (c Container) Expect(descriptor Descriptor) (Fields, error) {
	name := descriptor.Name

	if len(c.elements) < descriptor.Required() {
		return Fields{}, c.decoder.reject(codec.Errorf(name, codec.StepLength,
			"got %d elements, want at least %d", len(c.elements), descriptor.Required()), c.span.Bytes())
	}

	first := 0
	if descriptor.Tagged {
		tag, err := c.tag(name)
		if err != nil {
			return Fields{}, err
		}
		if tag != descriptor.Tag {
			return Fields{}, c.decoder.reject(codec.Errorf(name, codec.StepDiscriminator,
				"got %d, want %d", tag, descriptor.Tag), c.span.Bytes())
		}
		first = 1
	}

	fields := Fields{
		decoder:    c.decoder,
		descriptor: descriptor,
		elements:   c.elements[first : first+len(descriptor.Fields) : first+len(descriptor.Fields)],
	}
	if c.decoder.preserve {
		fields.original = OriginalOf(c.span)
	}
	return fields, nil
}

// Fields gives access to the declared fields of a container that
// passed Expect.
type Fields struct {
	decoder    *Decoder
	descriptor Descriptor
	elements   []codec.Span
	original   Original
}

// Len returns the number of declared fields.
func (f Fields) Len() int {
	return len(f.elements)
}

// Span returns the span of field i.
func (f Fields) Span(i int) codec.Span {
	return f.elements[i]
}

// Decode decodes field i into v through v's own CBOR codec. A failure
// is reported as a StepField FormatError naming the field.
func (f Fields) Decode(i int, v any) error {
	if err := f.decoder.codec.Unmarshal(f.elements[i].Bytes(), v); err != nil {
		return f.decoder.reject(&codec.FormatError{
			Type:      f.descriptor.Name,
			Step:      codec.StepField,
			Field:     f.descriptor.position(i),
			FieldName: f.descriptor.Fields[i],
			Err:       err,
		}, f.elements[i].Bytes())
	}
	return nil
}

// Original returns the reference to the container's bytes when the
// decoder preserves them, and the absent Original otherwise.
func (f Fields) Original() Original {
	return f.original
}
