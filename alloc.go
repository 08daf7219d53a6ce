// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import (
	"unsafe"

	"github.com/cznic/mathutil"
	"github.com/segheap/walloc/dlist"
	"github.com/segheap/walloc/heap"
)

// Allocator is a single, non-concurrent-safe heap. The zero value is not
// usable; construct one with New.
type Allocator struct {
	heap  heap.Adapter
	base  unsafe.Pointer
	words int // total words granted so far, including both fences
	chunk int
	debug bool
	lists [NLists]*dlist.List
	acc   nodeAccessor
}

// New constructs and initializes an Allocator per opts.
func New(opts Options) (*Allocator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	h := opts.Heap
	if h == nil {
		h = heap.NewArena(0)
	}
	chunk := opts.ChunkWords
	if chunk == 0 {
		chunk = DefaultChunkWords
	}

	a := &Allocator{heap: h, chunk: chunk, debug: opts.Debug}
	a.acc = nodeAccessor{a}
	for i := range a.lists {
		a.lists[i] = dlist.New(a.acc)
	}
	if err := a.init(); err != nil {
		return nil, err
	}
	return a, nil
}

// init requests the two fence words and the first chunk of heap, per the
// allocator's bootstrap sequence.
func (a *Allocator) init() error {
	p, err := a.heap.ExtendRaw(2 * wordSize)
	if err != nil {
		return &ErrINVAL{Name: "Heap", Arg: err}
	}
	a.base = p
	a.words = 2
	a.writeWord(0, fenceTag())
	a.writeWord(1, fenceTag())

	if _, ok := a.extendHeap(a.chunk); !ok {
		return &ErrINVAL{Name: "ChunkWords", Arg: a.chunk}
	}
	return nil
}

// Allocate returns a pointer to at least nBytes of payload, or nil if
// nBytes is not positive or the heap adapter is exhausted. The returned
// pointer is valid until the matching Free or until it is passed to
// Reallocate.
func (a *Allocator) Allocate(nBytes int) unsafe.Pointer {
	if nBytes <= 0 {
		return nil
	}
	req := computeReqWords(nBytes)
	if h, ok := a.findFit(req); ok {
		h = a.place(h, req)
		a.debugCheck()
		return a.payload(h)
	}

	grow := mathutil.Max(req, a.chunk)
	h, ok := a.extendHeap(grow)
	if !ok {
		return nil
	}
	h = a.place(h, req)
	a.debugCheck()
	return a.payload(h)
}

// Free releases the block p points at. p must be a pointer previously
// returned by Allocate or Reallocate on this Allocator, or nil, in which
// case Free does nothing.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	h := a.headerOf(p)
	size := a.blockSize(h)
	a.markFree(h, size)
	a.coalesce(h)
	a.debugCheck()
}

// debugCheck runs the consistency checker and panics on any violation,
// when the allocator was constructed with Options.Debug set.
func (a *Allocator) debugCheck() {
	if !a.debug {
		return
	}
	if _, err := a.Check(); err != nil {
		panic(err)
	}
}
