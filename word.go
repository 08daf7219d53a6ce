// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import "github.com/cznic/mathutil"

// wordSize is the size in bytes of a single boundary-tag word. All block
// sizes, offsets and the payload alignment unit are expressed in terms of
// it.
const wordSize = 4

// doubleWordSize is the client-visible alignment unit: every payload
// pointer Allocate returns is a multiple of doubleWordSize bytes from the
// heap's base.
const doubleWordSize = 2 * wordSize

// MinBlockWords is the smallest block size, in words, a block may ever
// have: one header, one footer, and a two-word free-list node when the
// block is free.
const MinBlockWords = 4

// word is a single boundary-tag cell: one bit of in-use state packed with
// a 31-bit word count. It also doubles as a free-list link slot, in which
// case it holds a plain word-index address (see nodeAccessor).
type word uint32

func makeTag(sizeWords int, inuse bool) word {
	t := word(sizeWords) << 1
	if inuse {
		t |= 1
	}
	return t
}

func fenceTag() word {
	return makeTag(0, true)
}

func (t word) size() int {
	return int(t >> 1)
}

func (t word) inuse() bool {
	return t&1 != 0
}

func (t word) isFence() bool {
	return t.inuse() && t.size() == 0
}

// align8 rounds n up to the next multiple of 8.
func align8(n int) int {
	return (n + 7) &^ 7
}

// roundUpEven rounds words up to the next even number.
func roundUpEven(words int) int {
	if words%2 != 0 {
		words++
	}
	return words
}

// computeReqWords turns a client byte request into the total block size,
// in words, needed to satisfy it: header, footer, payload (rounded so the
// next block's header stays on a double-word boundary), with a floor of
// MinBlockWords.
func computeReqWords(nBytes int) int {
	total := align8(nBytes + 2*wordSize)
	req := total / wordSize
	return mathutil.Max(req, MinBlockWords)
}
