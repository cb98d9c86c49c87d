// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gather

import (
	"runtime"

	"code.hybscloud.com/atomix"
)

// Opt is one tuple position as the completing sender sees it.
// Ok is false when that position's sender was dropped.
type Opt[T any] struct {
	Value T
	Ok    bool
}

// Tuple2 is the collected value of a two-position gather.
type Tuple2[A, B any] struct {
	V0 Opt[A]
	V1 Opt[B]
}

// Tuple3 is the collected value of a three-position gather.
type Tuple3[A, B, C any] struct {
	V0 Opt[A]
	V1 Opt[B]
	V2 Opt[C]
}

// Tuple4 is the collected value of a four-position gather.
type Tuple4[A, B, C, D any] struct {
	V0 Opt[A]
	V1 Opt[B]
	V2 Opt[C]
	V3 Opt[D]
}

// record is the storage shared by the senders of one tuple gather.
// Positions are written by their own senders before the countdown
// decrement; the sender that brings remaining to zero owns value.
type record[R any] struct {
	remaining atomix.Uint32
	value     R
}

// take moves the collected tuple out of the record.
func (r *record[R]) take() R {
	v := r.value
	var zero R
	r.value = zero
	return v
}

// part is the one-shot right to fill one position of a record.
// It references only the record so it can serve as a cleanup argument.
type part[T, R any] struct {
	used atomix.Uint32
	rec  *record[R]
	set  func(*R, T)
}

func (p *part[T, R]) claim() bool {
	return p.used.CompareAndSwap(0, 1)
}

func (p *part[T, R]) arrive() bool {
	return p.rec.remaining.Add(^uint32(0)) == 0
}

// dropPart discards p unless it already acted.
func dropPart[T, R any](p *part[T, R]) {
	if p.claim() && p.arrive() {
		p.rec.take()
	}
}

// Part is the one-shot sender of one tuple position. It places a T;
// the completing sender receives the whole tuple R.
type Part[T, R any] struct {
	p       *part[T, R]
	cleanup runtime.Cleanup
}

func newPart[T, R any](rec *record[R], set func(*R, T)) *Part[T, R] {
	p := &part[T, R]{rec: rec, set: set}
	s := &Part[T, R]{p: p}
	s.cleanup = runtime.AddCleanup(s, dropPart[T, R], p)
	return s
}

// Send places v, consuming the sender.
// If this completes the gather, it returns the tuple with every dropped
// position marked absent and last == true. Otherwise it returns the
// zero tuple and false.
//
// Panics if the sender has already been used.
func (s *Part[T, R]) Send(v T) (tuple R, last bool) {
	p := s.p
	if !p.claim() {
		panic("gather: sender used twice")
	}
	s.cleanup.Stop()
	p.set(&p.rec.value, v)
	if !p.arrive() {
		return tuple, false
	}
	return p.rec.take(), true
}

// Close drops the sender if it has not acted yet. If that completes the
// gather, the placed values are released unobserved. Idempotent.
func (s *Part[T, R]) Close() error {
	dropPart(s.p)
	s.cleanup.Stop()
	return nil
}

func newRecord[R any](n uint32) *record[R] {
	r := &record[R]{}
	r.remaining.Store(n)
	return r
}

// Parts2 holds the senders of a two-position gather.
type Parts2[A, B any] struct {
	V0 *Part[A, Tuple2[A, B]]
	V1 *Part[B, Tuple2[A, B]]
}

// NewTuple2 creates the senders of a two-position gather, one per
// position, each with its own payload type.
func NewTuple2[A, B any]() Parts2[A, B] {
	r := newRecord[Tuple2[A, B]](2)
	return Parts2[A, B]{
		V0: newPart(r, func(t *Tuple2[A, B], v A) { t.V0 = Opt[A]{v, true} }),
		V1: newPart(r, func(t *Tuple2[A, B], v B) { t.V1 = Opt[B]{v, true} }),
	}
}

// Close drops every position that has not acted. Always returns nil.
func (p Parts2[A, B]) Close() error {
	p.V0.Close()
	p.V1.Close()
	return nil
}

// Parts3 holds the senders of a three-position gather.
type Parts3[A, B, C any] struct {
	V0 *Part[A, Tuple3[A, B, C]]
	V1 *Part[B, Tuple3[A, B, C]]
	V2 *Part[C, Tuple3[A, B, C]]
}

// NewTuple3 creates the senders of a three-position gather.
func NewTuple3[A, B, C any]() Parts3[A, B, C] {
	r := newRecord[Tuple3[A, B, C]](3)
	return Parts3[A, B, C]{
		V0: newPart(r, func(t *Tuple3[A, B, C], v A) { t.V0 = Opt[A]{v, true} }),
		V1: newPart(r, func(t *Tuple3[A, B, C], v B) { t.V1 = Opt[B]{v, true} }),
		V2: newPart(r, func(t *Tuple3[A, B, C], v C) { t.V2 = Opt[C]{v, true} }),
	}
}

// Close drops every position that has not acted. Always returns nil.
func (p Parts3[A, B, C]) Close() error {
	p.V0.Close()
	p.V1.Close()
	p.V2.Close()
	return nil
}

// Parts4 holds the senders of a four-position gather.
type Parts4[A, B, C, D any] struct {
	V0 *Part[A, Tuple4[A, B, C, D]]
	V1 *Part[B, Tuple4[A, B, C, D]]
	V2 *Part[C, Tuple4[A, B, C, D]]
	V3 *Part[D, Tuple4[A, B, C, D]]
}

// NewTuple4 creates the senders of a four-position gather.
func NewTuple4[A, B, C, D any]() Parts4[A, B, C, D] {
	r := newRecord[Tuple4[A, B, C, D]](4)
	return Parts4[A, B, C, D]{
		V0: newPart(r, func(t *Tuple4[A, B, C, D], v A) { t.V0 = Opt[A]{v, true} }),
		V1: newPart(r, func(t *Tuple4[A, B, C, D], v B) { t.V1 = Opt[B]{v, true} }),
		V2: newPart(r, func(t *Tuple4[A, B, C, D], v C) { t.V2 = Opt[C]{v, true} }),
		V3: newPart(r, func(t *Tuple4[A, B, C, D], v D) { t.V3 = Opt[D]{v, true} }),
	}
}

// Close drops every position that has not acted. Always returns nil.
func (p Parts4[A, B, C, D]) Close() error {
	p.V0.Close()
	p.V1.Close()
	p.V2.Close()
	p.V3.Close()
	return nil
}
