// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walloc

import "testing"

func TestTagRoundTrip(t *testing.T) {
	cases := []struct {
		size  int
		inuse bool
	}{
		{4, true}, {4, false}, {1024, true}, {0, true},
	}
	for _, c := range cases {
		tag := makeTag(c.size, c.inuse)
		if got := tag.size(); got != c.size {
			t.Errorf("size(%d,%v) = %d, want %d", c.size, c.inuse, got, c.size)
		}
		if got := tag.inuse(); got != c.inuse {
			t.Errorf("inuse(%d,%v) = %v, want %v", c.size, c.inuse, got, c.inuse)
		}
	}
}

func TestFenceTag(t *testing.T) {
	f := fenceTag()
	if !f.isFence() {
		t.Fatal("fenceTag is not a fence")
	}
	if makeTag(0, false).isFence() {
		t.Fatal("a free zero-size tag must not read as a fence")
	}
	if makeTag(4, true).isFence() {
		t.Fatal("a nonzero-size used tag must not read as a fence")
	}
}

func TestComputeReqWords(t *testing.T) {
	cases := []struct{ n, want int }{
		{1, MinBlockWords},
		{16, 6}, // align8(16+8)/4 = 24/4 = 6
		{24, 8}, // align8(24+8)/4 = 32/4 = 8
		{25, 10},
	}
	for _, c := range cases {
		if got := computeReqWords(c.n); got != c.want {
			t.Errorf("computeReqWords(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestRoundUpEven(t *testing.T) {
	if roundUpEven(3) != 4 {
		t.Fatal("3 should round up to 4")
	}
	if roundUpEven(4) != 4 {
		t.Fatal("4 should stay 4")
	}
}
