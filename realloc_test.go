// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import (
	"testing"
	"unsafe"
)

func fillPattern(p unsafe.Pointer, n int) {
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		b[i] = byte(i)
	}
}

func checkPattern(t *testing.T, p unsafe.Pointer, n int) {
	t.Helper()
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		if b[i] != byte(i) {
			t.Fatalf("byte %d: got %d, want %d", i, b[i], byte(i))
		}
	}
}

func TestReallocateNilIsAllocate(t *testing.T) {
	a := newTestAllocator(t)
	p := a.Reallocate(nil, 32)
	if p == nil {
		t.Fatal("Reallocate(nil, n) must behave like Allocate(n)")
	}
	mustCheck(t, a)
}

func TestReallocateZeroFrees(t *testing.T) {
	a := newTestAllocator(t)
	p := a.Allocate(32)
	q := a.Reallocate(p, 0)
	if q != nil {
		t.Fatal("Reallocate(p, 0) must return nil")
	}
	st := mustCheck(t, a)
	if st.UsedBlocks != 0 {
		t.Fatalf("expected block freed, got %+v", st)
	}
}

func TestReallocateSameSizeIsIdempotent(t *testing.T) {
	a := newTestAllocator(t)
	p := a.Allocate(40)
	fillPattern(p, 40)
	q := a.Reallocate(p, 40)
	if q != p {
		t.Fatalf("same-size Reallocate moved the block: %v -> %v", p, q)
	}
	checkPattern(t, q, 40)
}

func TestReallocateShrinkPreservesPrefix(t *testing.T) {
	a := newTestAllocator(t)
	p := a.Allocate(128)
	fillPattern(p, 128)
	q := a.Reallocate(p, 16)
	if q != p {
		t.Fatalf("shrink must not move the block: %v -> %v", p, q)
	}
	checkPattern(t, q, 16)
	mustCheck(t, a)
}

func TestReallocateGrowIntoFreeNeighbor(t *testing.T) {
	a := newTestAllocator(t)
	p := a.Allocate(16)
	side := a.Allocate(16) // consumes what would otherwise be p's free neighbor
	a.Free(side)           // now p borders a free block big enough to grow into
	fillPattern(p, 16)
	q := a.Reallocate(p, 48)
	if q == nil {
		t.Fatal("grow-in-place failed")
	}
	if q != p {
		t.Fatalf("expected grow in place to keep the same handle: %v -> %v", p, q)
	}
	checkPattern(t, q, 16)
	mustCheck(t, a)
}

func TestReallocateGrowAtHeapEdge(t *testing.T) {
	a := newTestAllocator(t)
	// drain everything so the last live block borders the right fence.
	st := mustCheck(t, a)
	p := a.Allocate((st.FreeWords - 2) * wordSize)
	if p == nil {
		t.Fatal("setup allocation failed")
	}
	fillPattern(p, 32)
	q := a.Reallocate(p, 4096)
	if q == nil {
		t.Fatal("grow at heap edge failed")
	}
	checkPattern(t, q, 32)
	mustCheck(t, a)
}

func TestReallocateFallbackCopiesAndFrees(t *testing.T) {
	a := newTestAllocator(t)
	p := a.Allocate(16)
	blocker := a.Allocate(16) // keeps p's neighbor used, forcing relocation
	fillPattern(p, 16)
	q := a.Reallocate(p, 512)
	if q == nil {
		t.Fatal("Reallocate failed")
	}
	if q == p {
		t.Fatal("expected relocation, block had no room to grow in place")
	}
	checkPattern(t, q, 16)
	mustCheck(t, a)
	_ = blocker
}
