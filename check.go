// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import "github.com/segheap/walloc/dlist"

// Check walks the whole heap validating boundary-tag consistency (header
// matches footer, no two adjacent free blocks, every block size is even
// and at least MinBlockWords) and cross-checks every free block against
// free-list membership in both directions: every block the walk finds
// free must be in its size class's list, and every list member must be a
// block the walk found free, in the list matching its own size. It
// returns Stats for the heap observed along the way.
//
// Check is O(heap size) and is meant for development and testing, not
// the hot allocation path; Options.Debug runs it automatically after
// every mutating call.
func (a *Allocator) Check() (Stats, error) {
	var st Stats
	st.TotalWords = a.words

	seenFree := make(map[int]bool)
	prevFree := false
	h := 1
	for {
		tag := a.readWord(h)
		if tag.isFence() {
			if h != a.words-1 {
				return st, &ErrCorrupt{Reason: "fence found before end of heap", Offset: uintptr(h)}
			}
			break
		}

		size := tag.size()
		if size < MinBlockWords || size%2 != 0 {
			return st, &ErrCorrupt{Reason: "block size out of range", Offset: uintptr(h)}
		}
		footer := a.readWord(h + size - 1)
		if footer != tag {
			return st, &ErrCorrupt{Reason: "header/footer mismatch", Offset: uintptr(h)}
		}

		free := !tag.inuse()
		if free && prevFree {
			return st, &ErrCorrupt{Reason: "adjacent free blocks were not coalesced", Offset: uintptr(h)}
		}

		if free {
			seenFree[h] = true
			st.FreeBlocks++
			st.FreeWords += size
		} else {
			st.UsedBlocks++
			st.UsedWords += size
		}

		prevFree = free
		h += size
	}

	listed := make(map[int]bool)
	for k := 0; k < NLists; k++ {
		for n := a.lists[k].Begin(); n != dlist.Nil; n = a.lists[k].Next(n) {
			idx := int(n)
			if !seenFree[idx] {
				return st, &ErrCorrupt{Reason: "free list holds a block the heap walk didn't see as free", Offset: uintptr(idx)}
			}
			if got := sizeClass(a.blockSize(idx)); got != k {
				return st, &ErrCorrupt{Reason: "free block registered in the wrong size class", Offset: uintptr(idx)}
			}
			listed[idx] = true
		}
	}
	for idx := range seenFree {
		if !listed[idx] {
			return st, &ErrCorrupt{Reason: "free block missing from its free list", Offset: uintptr(idx)}
		}
	}

	return st, nil
}
