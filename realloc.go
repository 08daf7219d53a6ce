// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import (
	"unsafe"

	"github.com/cznic/mathutil"
)

// Reallocate resizes the block p points at to hold nBytes, preserving as
// much of its content as still fits, and returns a pointer to the
// (possibly different) block. A nil p behaves like Allocate(nBytes); an
// nBytes of zero frees p and returns nil.
func (a *Allocator) Reallocate(p unsafe.Pointer, nBytes int) unsafe.Pointer {
	if p == nil {
		return a.Allocate(nBytes)
	}
	if nBytes <= 0 {
		a.Free(p)
		return nil
	}

	h := a.headerOf(p)
	oldSize := a.blockSize(h)
	req := computeReqWords(nBytes)

	var result unsafe.Pointer
	if req <= oldSize {
		result = a.payload(a.reallocShrink(h, req))
	} else if nh, ok := a.reallocGrowInPlace(h, oldSize, req); ok {
		result = a.payload(nh)
	} else {
		result = a.reallocFallback(p, oldSize, nBytes)
	}
	a.debugCheck()
	return result
}

// reallocShrink keeps the block at h in place, splitting off and
// coalescing a free tail if the shrink leaves enough slack, exactly as
// Free would for a freshly freed block of that size.
func (a *Allocator) reallocShrink(h, req int) int {
	oldSize := a.blockSize(h)
	if oldSize-req < MinBlockWords {
		return h
	}
	a.markUsed(h, req)
	tailH := h + req
	a.markFree(tailH, oldSize-req)
	a.coalesce(tailH)
	return h
}

// reallocGrowInPlace tries to satisfy a grow without moving the block's
// content, per the three in-place cases: the block already borders the
// right fence, its right neighbor is free and big enough on its own, or
// its right neighbor is free, not quite big enough, but itself borders
// the right fence so the heap can be grown to make up the difference.
func (a *Allocator) reallocGrowInPlace(h, oldSize, req int) (int, bool) {
	nextIdx := h + oldSize

	if a.isFenceAt(nextIdx) {
		deficit := req - oldSize
		if _, ok := a.extendHeap(mathutil.Max(deficit, a.chunk)); !ok {
			return 0, false
		}
		a.removeFree(nextIdx)
		a.markUsedSplit(h, oldSize+a.blockSize(nextIdx), req)
		return h, true
	}

	if a.blockInuse(nextIdx) {
		return 0, false
	}

	nextSize := a.blockSize(nextIdx)
	if oldSize+nextSize >= req {
		a.removeFree(nextIdx)
		a.markUsedSplit(h, oldSize+nextSize, req)
		return h, true
	}

	afterNext := nextIdx + nextSize
	if !a.isFenceAt(afterNext) {
		return 0, false
	}

	deficit := req - (oldSize + nextSize)
	if _, ok := a.extendHeap(mathutil.Max(deficit, a.chunk)); !ok {
		return 0, false
	}
	// extendHeap's own coalesce folds the grown region into the free
	// block that used to sit at nextIdx, since that block bordered the
	// fence being reused; its handle doesn't move.
	grownSize := a.blockSize(nextIdx)
	a.removeFree(nextIdx)
	a.markUsedSplit(h, oldSize+grownSize, req)
	return h, true
}

// reallocFallback allocates a new block, copies what it can of the old
// content into it, and frees the old block.
func (a *Allocator) reallocFallback(p unsafe.Pointer, oldSize, nBytes int) unsafe.Pointer {
	q := a.Allocate(nBytes)
	if q == nil {
		return nil
	}
	n := oldSize * wordSize
	if n > nBytes {
		n = nBytes
	}
	copy(unsafe.Slice((*byte)(q), n), unsafe.Slice((*byte)(p), n))
	a.Free(p)
	return q
}
