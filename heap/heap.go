// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides the raw, monotonically-growable address space that
// backs a walloc.Allocator. It plays the role a Filer plays for lldb: the
// allocator core never touches the operating system directly, it only talks
// to this small Adapter contract, and this package supplies the concrete,
// swappable collaborators.
package heap

import "unsafe"

// DefaultCapacity is used by an Adapter constructor when the caller passes a
// zero capacity.
const DefaultCapacity = 64 << 20 // 64MiB

// Adapter is the sbrk-style raw heap extender walloc.Allocator consumes. An
// Adapter MUST return address-contiguous regions: the region returned by a
// call MUST begin exactly at the address one byte past the end of the
// region returned by the previous successful call (or at Low(), for the
// first call). An Adapter is not safe for concurrent use; walloc.Allocator
// never calls it concurrently with itself.
type Adapter interface {
	// ExtendRaw grows the heap by n bytes and returns a pointer to the
	// start of the newly available region, or an error (typically
	// *ErrNoMem) if no more space is available. n is always a positive
	// multiple of 4 (a whole number of words).
	ExtendRaw(n uintptr) (unsafe.Pointer, error)

	// Low returns the address at which the first ExtendRaw region begins.
	// It is valid to call before any ExtendRaw call has succeeded.
	Low() unsafe.Pointer

	// High returns the address one byte past the last byte handed out.
	High() unsafe.Pointer
}
