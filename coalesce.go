// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

// coalesce merges the free block at h with a free left neighbor, a free
// right neighbor, or both, inserting the (possibly merged) result into
// the appropriate free list. h's own tags must already be written free
// before calling this. It returns the handle of the resulting block.
func (a *Allocator) coalesce(h int) int {
	var prevH int
	prevFree := !a.isFenceAt(h - 1)
	if prevFree {
		prevH = a.prevBlock(h)
		prevFree = !a.blockInuse(prevH)
	}

	size := a.blockSize(h)
	nextIdx := h + size
	nextFree := !a.isFenceAt(nextIdx)
	if nextFree {
		nextFree = !a.blockInuse(nextIdx)
	}

	switch {
	case !prevFree && !nextFree:
		a.insertFree(h)
		return h
	case !prevFree && nextFree:
		nsize := a.blockSize(nextIdx)
		a.removeFree(nextIdx)
		a.markFree(h, size+nsize)
		a.insertFree(h)
		return h
	case prevFree && !nextFree:
		psize := a.blockSize(prevH)
		a.removeFree(prevH)
		a.markFree(prevH, psize+size)
		a.insertFree(prevH)
		return prevH
	default:
		psize := a.blockSize(prevH)
		nsize := a.blockSize(nextIdx)
		a.removeFree(prevH)
		a.removeFree(nextIdx)
		a.markFree(prevH, psize+size+nsize)
		a.insertFree(prevH)
		return prevH
	}
}
