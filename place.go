// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

// markUsedSplit carves req words of used block out of the available
// words starting at h. If the remainder is at least MinBlockWords, it is
// left behind as a new free block and inserted into its list; otherwise
// the whole span is marked used, including the slack. The carved-off
// remainder always sits at the high-address end, so the handle a caller
// already holds keeps pointing at the used part.
func (a *Allocator) markUsedSplit(h, available, req int) {
	if available-req >= MinBlockWords {
		a.markUsed(h, req)
		remH := h + req
		a.markFree(remH, available-req)
		a.insertFree(remH)
		return
	}
	a.markUsed(h, available)
}

// place removes the free block at h from its list and carves req words
// of used space out of it, per markUsedSplit. It returns h.
func (a *Allocator) place(h, req int) int {
	a.removeFree(h)
	available := a.blockSize(h)
	a.markUsedSplit(h, available, req)
	return h
}
