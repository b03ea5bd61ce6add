// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the ledger codec.
//
// Configuration is loaded from a single file whose path the caller
// passes to [LoadFile]. There are no fallbacks, no environment
// variables, and no automatic file search. A program that never
// loads a file gets [Default], which is what the package-level
// decoders in lib/codec use.
//
// Files ending in .yaml or .yml are parsed as YAML. Files ending in
// .json or .jsonc are parsed as JSON after stripping // and /* */
// comments and trailing commas.
//
// The file may contain environment-specific sections (development,
// production) that override the base decode limits when
// [Config].Environment matches. Production is typically configured
// with tighter limits because it decodes untrusted network input.
//
// This package depends on no other ledger packages.
package config
