// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import "github.com/segheap/walloc/heap"

// DefaultChunkWords is the number of words requested from the heap
// adapter whenever no existing free block can satisfy an allocation and
// the deficit itself is small.
const DefaultChunkWords = 1024

// Options configures a new Allocator. The zero value is valid; every
// field defaults as documented.
type Options struct {
	// Heap supplies the raw, growable address space the allocator builds
	// blocks on top of. Defaults to heap.NewArena(0).
	Heap heap.Adapter

	// ChunkWords is the minimum number of words requested from Heap each
	// time the allocator must grow. Defaults to DefaultChunkWords.
	ChunkWords int

	// NLists, if set, must equal the package constant NLists. It exists
	// only so a caller can assert the build they're linking against has
	// the list count they expect; the list array itself is fixed size.
	NLists int

	// Debug, when true, runs the full consistency checker after every
	// mutating call (Allocate, Free, Reallocate) and turns any violation
	// it finds into a panic. This is O(heap size) per call and is meant
	// for development and testing, not production use.
	Debug bool
}

func (o Options) validate() error {
	if o.NLists != 0 && o.NLists != NLists {
		return &ErrINVAL{Name: "NLists", Arg: o.NLists}
	}
	if o.ChunkWords < 0 {
		return &ErrINVAL{Name: "ChunkWords", Arg: o.ChunkWords}
	}
	return nil
}
