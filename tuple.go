// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Tuple2 holds one endpoint per position of a two-position tuple slot.
// Vi of the first tuple and Vi of the second tuple form an independent pair.
type Tuple2[A, B any] struct {
	V0 *Sender[A, A]
	V1 *Sender[B, B]
}

// NewTuple2 creates two index-aligned endpoint tuples, one slot per position.
func NewTuple2[A, B any]() (first, second Tuple2[A, B]) {
	first.V0, second.V0 = New[A, A]()
	first.V1, second.V1 = New[B, B]()
	return first, second
}

// Close discards every position that has not acted. Always returns nil.
func (t Tuple2[A, B]) Close() error {
	t.V0.Close()
	t.V1.Close()
	return nil
}

// Tuple3 holds one endpoint per position of a three-position tuple slot.
type Tuple3[A, B, C any] struct {
	V0 *Sender[A, A]
	V1 *Sender[B, B]
	V2 *Sender[C, C]
}

// NewTuple3 creates two index-aligned endpoint tuples, one slot per position.
func NewTuple3[A, B, C any]() (first, second Tuple3[A, B, C]) {
	first.V0, second.V0 = New[A, A]()
	first.V1, second.V1 = New[B, B]()
	first.V2, second.V2 = New[C, C]()
	return first, second
}

// Close discards every position that has not acted. Always returns nil.
func (t Tuple3[A, B, C]) Close() error {
	t.V0.Close()
	t.V1.Close()
	t.V2.Close()
	return nil
}

// Tuple4 holds one endpoint per position of a four-position tuple slot.
type Tuple4[A, B, C, D any] struct {
	V0 *Sender[A, A]
	V1 *Sender[B, B]
	V2 *Sender[C, C]
	V3 *Sender[D, D]
}

// NewTuple4 creates two index-aligned endpoint tuples, one slot per position.
func NewTuple4[A, B, C, D any]() (first, second Tuple4[A, B, C, D]) {
	first.V0, second.V0 = New[A, A]()
	first.V1, second.V1 = New[B, B]()
	first.V2, second.V2 = New[C, C]()
	first.V3, second.V3 = New[D, D]()
	return first, second
}

// Close discards every position that has not acted. Always returns nil.
func (t Tuple4[A, B, C, D]) Close() error {
	t.V0.Close()
	t.V1.Close()
	t.V2.Close()
	t.V3.Close()
	return nil
}
