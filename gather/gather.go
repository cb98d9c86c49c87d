// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gather

import (
	"math"
	"runtime"

	"code.hybscloud.com/atomix"
)

// cell is one sender's reserved storage.
type cell[T any] struct {
	value  T
	placed bool
}

// slot is shared by all senders of one gather.
// A cell is written only by its own sender before that sender's
// countdown decrement; the sender that brings remaining to zero owns
// every cell afterwards.
type slot[T any] struct {
	remaining atomix.Uint32
	cells     []cell[T]
}

// finish empties the slot, returning the placed values in index order.
func (s *slot[T]) finish() []T {
	values := make([]T, 0, len(s.cells))
	for i := range s.cells {
		c := &s.cells[i]
		if c.placed {
			values = append(values, c.value)
		}
		*c = cell[T]{}
	}
	return values
}

// ticket is the one-shot right to act on a cell.
// It references only the slot so it can serve as a cleanup argument.
type ticket[T any] struct {
	used  atomix.Uint32
	slot  *slot[T]
	index int
}

// claim reports whether this is the ticket's first use.
func (t *ticket[T]) claim() bool {
	return t.used.CompareAndSwap(0, 1)
}

// arrive counts the ticket's action and reports whether it was the last.
func (t *ticket[T]) arrive() bool {
	return t.slot.remaining.Add(^uint32(0)) == 0
}

// drop discards the ticket unless it already acted.
func drop[T any](t *ticket[T]) {
	if t.claim() && t.arrive() {
		t.slot.finish()
	}
}

// Sender is one of the n one-shot senders of a gather slot.
type Sender[T any] struct {
	t       *ticket[T]
	cleanup runtime.Cleanup
}

// New creates n senders over one fresh slot. Panics if n is negative or
// does not fit the slot's countdown.
func New[T any](n int) []*Sender[T] {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic("gather: invalid sender count")
	}
	s := &slot[T]{cells: make([]cell[T], n)}
	s.remaining.Store(uint32(n))
	senders := make([]*Sender[T], n)
	for i := range senders {
		t := &ticket[T]{slot: s, index: i}
		sender := &Sender[T]{t: t}
		sender.cleanup = runtime.AddCleanup(sender, drop[T], t)
		senders[i] = sender
	}
	return senders
}

// Send places v, consuming the sender.
// If this completes the slot, it returns every placed value in index
// order and last == true. Otherwise it returns (nil, false).
//
// Panics if the sender has already been used.
func (s *Sender[T]) Send(v T) (values []T, last bool) {
	t := s.t
	if !t.claim() {
		panic("gather: sender used twice")
	}
	s.cleanup.Stop()
	c := &t.slot.cells[t.index]
	c.value, c.placed = v, true
	if !t.arrive() {
		return nil, false
	}
	return t.slot.finish(), true
}

// Close drops the sender if it has not acted yet. If that completes the
// slot, the placed values are released unobserved. Idempotent.
func (s *Sender[T]) Close() error {
	drop(s.t)
	s.cleanup.Stop()
	return nil
}

// Index returns the sender's position in the slot.
func (s *Sender[T]) Index() int {
	return s.t.index
}
