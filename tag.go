// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import "unsafe"

// A block handle h is the word index of its header, relative to a.base.
// These helpers read and write the header/footer words of the block at h
// and walk to its neighbors. None of them check bounds against the left
// or right fence; callers that might be looking at a fence word check
// isFenceAt first.

func (a *Allocator) wordPtr(i int) *word {
	return (*word)(unsafe.Pointer(uintptr(a.base) + uintptr(i)*wordSize))
}

func (a *Allocator) readWord(i int) word {
	return *a.wordPtr(i)
}

func (a *Allocator) writeWord(i int, v word) {
	*a.wordPtr(i) = v
}

func (a *Allocator) isFenceAt(i int) bool {
	return a.readWord(i).isFence()
}

// blockSize returns the size, in words, of the block headed at h.
func (a *Allocator) blockSize(h int) int {
	return a.readWord(h).size()
}

func (a *Allocator) blockInuse(h int) bool {
	return a.readWord(h).inuse()
}

// markUsed writes matching header and footer tags marking the block at h,
// of the given size, in use.
func (a *Allocator) markUsed(h, sizeWords int) {
	t := makeTag(sizeWords, true)
	a.writeWord(h, t)
	a.writeWord(h+sizeWords-1, t)
}

// markFree writes matching header and footer tags marking the block at h,
// of the given size, free. It does not touch any free list.
func (a *Allocator) markFree(h, sizeWords int) {
	t := makeTag(sizeWords, false)
	a.writeWord(h, t)
	a.writeWord(h+sizeWords-1, t)
}

// prevBlock returns the handle of the block immediately to the left of h,
// computed from that block's footer (the word at h-1). The caller must
// already know that word is a real footer, not the left fence.
func (a *Allocator) prevBlock(h int) int {
	return h - a.readWord(h-1).size()
}

// nextBlock returns the handle of the block immediately to the right of
// h. The caller must already know it's a real block, not the right
// fence.
func (a *Allocator) nextBlock(h int) int {
	return h + a.blockSize(h)
}

// payload returns the client-visible pointer for the block at h: the
// address of its first body word.
func (a *Allocator) payload(h int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(a.base) + uintptr(h+1)*wordSize)
}

// headerOf recovers the handle of the block whose payload is p.
func (a *Allocator) headerOf(p unsafe.Pointer) int {
	return a.wordIndex(p) - 1
}

func (a *Allocator) wordIndex(p unsafe.Pointer) int {
	return int((uintptr(p) - uintptr(a.base)) / wordSize)
}
