// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package heap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap is the production-grade Adapter: it reserves a single large,
// page-aligned region of address space with a real anonymous mmap up
// front and hands it out by bumping a high-water mark, the way mallocinit
// reserves an arena and grows into it a page run at a time rather than
// asking the kernel for memory one allocation at a time.
type Mmap struct {
	data []byte
	used uintptr
}

// NewMmap reserves capacity bytes of address space. A capacity of 0 uses
// DefaultCapacity. The pages are not actually touched until written, so
// reserving more than will ever be used costs address space, not RAM.
func NewMmap(capacity uintptr) (*Mmap, error) {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	data, err := unix.Mmap(-1, 0, int(capacity), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Mmap{data: data}, nil
}

// ExtendRaw implements Adapter.
func (m *Mmap) ExtendRaw(n uintptr) (unsafe.Pointer, error) {
	if m.used+n > uintptr(len(m.data)) {
		return nil, &ErrNoMem{Requested: n}
	}
	p := unsafe.Pointer(&m.data[m.used])
	m.used += n
	return p, nil
}

// Low implements Adapter.
func (m *Mmap) Low() unsafe.Pointer {
	return unsafe.Pointer(&m.data[0])
}

// High implements Adapter.
func (m *Mmap) High() unsafe.Pointer {
	return unsafe.Pointer(uintptr(m.Low()) + m.used)
}

// Close releases the reserved address space. Any pointer previously
// handed out by the allocator built on top of m becomes invalid.
func (m *Mmap) Close() error {
	return unix.Munmap(m.data)
}
