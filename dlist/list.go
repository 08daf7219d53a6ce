// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlist implements an intrusive doubly-linked list: the prev/next
// links live inside the caller's own storage rather than in a node struct
// owned by the list, the way a free block's body carries its own link
// words instead of a separate allocation. The list itself only ever holds
// a head address and delegates link reads/writes to an Accessor.
package dlist

// Addr identifies a node by its address in whatever storage the Accessor
// manages. It is opaque to List.
type Addr uintptr

// Nil is the address that denotes "no node".
const Nil Addr = 0

// Accessor reads and writes the link pair embedded at a node's address. A
// List never allocates or frees node storage; it only rewires links.
type Accessor interface {
	Prev(n Addr) Addr
	Next(n Addr) Addr
	SetPrev(n, p Addr)
	SetNext(n, v Addr)
}

// List is the head of a list of Accessor-embedded nodes.
type List struct {
	acc  Accessor
	head Addr
}

// New returns an empty list backed by acc.
func New(acc Accessor) *List {
	return &List{acc: acc}
}

// Empty reports whether the list has no nodes.
func (l *List) Empty() bool {
	return l.head == Nil
}

// Begin returns the first node, or Nil if the list is empty.
func (l *List) Begin() Addr {
	return l.head
}

// Next returns the node following n, or Nil at the end of the list.
func (l *List) Next(n Addr) Addr {
	return l.acc.Next(n)
}

// PushFront inserts n as the new head of the list. n must not already be
// a member of any list.
func (l *List) PushFront(n Addr) {
	old := l.head
	l.acc.SetPrev(n, Nil)
	l.acc.SetNext(n, old)
	if old != Nil {
		l.acc.SetPrev(old, n)
	}
	l.head = n
}

// InsertBefore inserts n immediately before existing. If existing is Nil,
// n becomes the new head.
func (l *List) InsertBefore(existing, n Addr) {
	if existing == Nil {
		l.PushFront(n)
		return
	}
	p := l.acc.Prev(existing)
	l.acc.SetPrev(n, p)
	l.acc.SetNext(n, existing)
	l.acc.SetPrev(existing, n)
	if p != Nil {
		l.acc.SetNext(p, n)
	} else {
		l.head = n
	}
}

// Remove unlinks n from the list. n must be a current member.
func (l *List) Remove(n Addr) {
	p := l.acc.Prev(n)
	nx := l.acc.Next(n)
	if p != Nil {
		l.acc.SetNext(p, nx)
	} else {
		l.head = nx
	}
	if nx != Nil {
		l.acc.SetPrev(nx, p)
	}
	l.acc.SetPrev(n, Nil)
	l.acc.SetNext(n, Nil)
}
