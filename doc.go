// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A walloc heap is a single contiguous run of words handed out by a
// heap.Adapter, bracketed by two one-word fences that never correspond to
// a real block. Between them sit used and free blocks back to back, each
// carrying a header word and a matching footer word so a block's left
// neighbor can always be found without a separate "previous block"
// pointer: the footer word immediately to the left of a header holds the
// same {inuse, size} pair the header does.
//
// Free blocks additionally carry a two-word link node in the first two
// words of their body, making them members of one of NLists segregated
// free lists keyed by size class. Allocate walks the list of the request's
// own size class first and then each larger class in turn; Free always runs the same
// boundary-tag coalescing step regardless of which neighbors turn out to
// be free.
package walloc
