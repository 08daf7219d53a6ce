// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

// extendHeap asks the heap adapter for reqWords more words (rounded up to
// an even count, floored at MinBlockWords), reusing the word that used to
// hold the right fence as the header of a brand new free block, and
// writes a fresh right fence past the end of it. The new block is folded
// into a left neighbor if one happens to be free, so the handle returned
// is not always the new block itself.
func (a *Allocator) extendHeap(reqWords int) (int, bool) {
	reqWords = roundUpEven(reqWords)
	if reqWords < MinBlockWords {
		reqWords = MinBlockWords
	}
	if _, err := a.heap.ExtendRaw(uintptr(reqWords) * wordSize); err != nil {
		return 0, false
	}

	h := a.words - 1 // the old right fence's word index
	a.words += reqWords
	a.markFree(h, reqWords)
	a.writeWord(a.words-1, fenceTag())
	return a.coalesce(h), true
}
