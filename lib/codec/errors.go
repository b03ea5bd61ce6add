// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrFormat matches every [*FormatError] under errors.Is.
var ErrFormat = errors.New("invalid CBOR format")

// Step identifies which validation step rejected the input. Decoding
// runs the steps in declaration order and stops at the first failure.
type Step int

const (
	// StepContainer: the input is not a well-formed CBOR item of
	// the expected kind (for records, an array).
	StepContainer Step = iota + 1

	// StepLength: the container has fewer elements than the record
	// requires.
	StepLength

	// StepDiscriminator: element 0 is not an unsigned integer, or
	// not the discriminator the record declares.
	StepDiscriminator

	// StepField: a declared field failed its own decoding. The
	// field's error is wrapped.
	StepField

	// StepValue: a value decoded but violates its type's rules, such
	// as a negative amount or a hash of the wrong length. Raised by
	// constructors as well as decoders.
	StepValue
)

func (s Step) String() string {
	switch s {
	case StepContainer:
		return "container"
	case StepLength:
		return "length"
	case StepDiscriminator:
		return "discriminator"
	case StepField:
		return "field"
	case StepValue:
		return "value"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// FormatError reports input that does not form a valid value of Type.
type FormatError struct {
	// Type is the record or field type being built, e.g.
	// "RegistrationDeposit" or "Coin".
	Type string

	// Step is the validation step that failed.
	Step Step

	// Field is the index of the failing element within the
	// container; the discriminator, when present, is element 0. Only
	// set for StepField.
	Field int

	// FieldName is the declared name of the failing field. Only set
	// for StepField.
	FieldName string

	// Detail describes the failure for the steps that have no
	// underlying error.
	Detail string

	// Err is the underlying error, if any.
	Err error
}

// Errorf returns a FormatError for typeName at step with a formatted
// detail message.
func Errorf(typeName string, step Step, format string, args ...any) *FormatError {
	return &FormatError{Type: typeName, Step: step, Detail: fmt.Sprintf(format, args...)}
}

// Wrap returns a FormatError for typeName at step caused by err.
func Wrap(typeName string, step Step, err error) *FormatError {
	return &FormatError{Type: typeName, Step: step, Err: err}
}

func (e *FormatError) Error() string {
	message := fmt.Sprintf("invalid CBOR for '%s': %s", e.Type, e.Step)
	if e.Step == StepField {
		message = fmt.Sprintf("%s %d (%s)", message, e.Field, e.FieldName)
	}
	if e.Detail != "" {
		message += ": " + e.Detail
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFormat) true for every FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// LogValue renders the error as a structured log group.
func (e *FormatError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type),
		slog.String("step", e.Step.String()),
	}
	if e.Step == StepField {
		attrs = append(attrs, slog.Int("field", e.Field), slog.String("field_name", e.FieldName))
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}
