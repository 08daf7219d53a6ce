// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "fmt"

// ErrNoMem reports that an Adapter has exhausted its reserved address
// space.
type ErrNoMem struct {
	Requested uintptr
}

func (e *ErrNoMem) Error() string {
	return fmt.Sprintf("heap: out of memory requesting %d bytes", e.Requested)
}
