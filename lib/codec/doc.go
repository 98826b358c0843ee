// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration.
//
// VideoWall uses two serialization formats with a clear boundary:
//
//   - JSON for external interfaces: profile files (human-edited), the
//     player's IPC protocol, and CLI --json output.
//   - CBOR for internal protocols: the control socket, where VideoWall
//     owns both ends.
//
// This package provides the shared CBOR encoding and decoding modes so
// every package encodes identically without duplicating configuration.
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (sockets):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// # Struct Tag Rules
//
// The struct tag on a type documents its serialization format:
//
//   - `cbor` tag: this type is ONLY ever serialized as CBOR (control
//     socket envelopes).
//   - `json` tag: this type may be serialized as BOTH JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags as fallback when `cbor` tags
//     are absent, so a single `json` tag controls field naming and
//     omitempty for both formats. Example: the status report, which
//     travels over the control socket as CBOR and is printed by the
//     CLI as JSON.
//
// Never use both `cbor` and `json` tags on the same field.
package codec
