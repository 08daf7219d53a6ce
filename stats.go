// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

// Stats summarizes the state of a heap as observed by Check.
type Stats struct {
	TotalWords int
	UsedWords  int
	FreeWords  int
	UsedBlocks int
	FreeBlocks int
}
