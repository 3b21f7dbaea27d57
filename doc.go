// Package qoi provides a pure Go encoder and decoder for the QOI
// (Quite OK Image) lossless image format.
//
// QOI compresses 8-bit RGB and RGBA images using only byte-aligned
// operations: runs of identical pixels, a 64-entry recency cache, and
// small deltas against the previous pixel. Encoding and decoding are
// single-pass, in-memory transforms with exact round-trip fidelity.
// This package implements the format without any CGo dependencies,
// making it fully portable and easy to cross-compile.
//
// The package registers itself with the standard library's image
// package, so image.Decode transparently reads QOI files.
//
// Basic usage for decoding:
//
//	img, err := qoi.Decode(reader)
//
// Basic usage for encoding:
//
//	err := qoi.Encode(writer, img, nil)
//
// The raw-buffer API (EncodeRaw, DecodeRaw) operates directly on
// packed RGB/RGBA byte buffers for callers that do not want to go
// through image.Image.
package qoi
