// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

// NLists is the number of segregated free lists. List k holds free blocks
// of size in [2^k, 2^(k+1)) words, except the last list, which absorbs
// every size at or above 2^(NLists-1).
const NLists = 20

// sizeClass returns the index of the free list that a block of the given
// size, in words, belongs to.
func sizeClass(words int) int {
	if words < 1 {
		words = 1
	}
	k := 0
	for words > 1 && k < NLists-1 {
		words >>= 1
		k++
	}
	return k
}
