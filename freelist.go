// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import "github.com/segheap/walloc/dlist"

// nodeAccessor makes a free block's own body double as its free-list
// link node: the two words immediately following the header (words h+1
// and h+2) hold the prev/next addresses, so no separate node allocation
// is ever needed. A block's dlist.Addr is simply its handle.
type nodeAccessor struct {
	a *Allocator
}

func (n nodeAccessor) Prev(h dlist.Addr) dlist.Addr {
	return dlist.Addr(n.a.readWord(int(h) + 1))
}

func (n nodeAccessor) Next(h dlist.Addr) dlist.Addr {
	return dlist.Addr(n.a.readWord(int(h) + 2))
}

func (n nodeAccessor) SetPrev(h, p dlist.Addr) {
	n.a.writeWord(int(h)+1, word(p))
}

func (n nodeAccessor) SetNext(h, v dlist.Addr) {
	n.a.writeWord(int(h)+2, word(v))
}

// insertFree adds the free block at h to the list matching its current
// size. The caller must have already written h's free tags.
func (a *Allocator) insertFree(h int) {
	k := sizeClass(a.blockSize(h))
	a.lists[k].PushFront(dlist.Addr(h))
}

// removeFree unlinks the free block at h from its list. The caller must
// not have changed h's size since it was inserted.
func (a *Allocator) removeFree(h int) {
	k := sizeClass(a.blockSize(h))
	a.lists[k].Remove(dlist.Addr(h))
}

// findFit returns the handle of the first free block able to satisfy a
// request of req words, searching req's size class first and then each
// larger class in turn.
func (a *Allocator) findFit(req int) (int, bool) {
	for k := sizeClass(req); k < NLists; k++ {
		l := a.lists[k]
		for n := l.Begin(); n != dlist.Nil; n = l.Next(n) {
			if a.blockSize(int(n)) >= req {
				return int(n), true
			}
		}
	}
	return 0, false
}
