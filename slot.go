// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/atomix"
)

// Slot resolution states. The zero value is stateEmpty.
//
//	Empty ──deposit──▶ First | Second ──peer acts──▶ Closed
//	Empty ──discard──▶ Disconnected   ──peer acts──▶ Closed
const (
	stateEmpty uint32 = iota
	stateFirst
	stateSecond
	stateDisconnected
	stateClosed
)

// outcome is the slot-level result of a deposit attempt.
type outcome uint8

const (
	deposited outcome = iota
	gotOther
	peerGone
)

// slot is the control block shared by exactly one endpoint pair.
//
// Each identity owns a reserved cell. The owner writes its cell before
// the Empty → Occupied transition publishes it; the peer reads the cell
// only after observing that Occupied state. A cell that is never
// published is cleared by its owner, so a value is observable iff the
// state is stateFirst or stateSecond.
type slot[A, B any] struct {
	state atomix.Uint32
	a     A
	b     B
}

// core is one endpoint's view of a slot.
// mine and theirs are the Occupied states of the owner and of the peer.
type core[T, U any] struct {
	state  *atomix.Uint32
	own    *T
	other  *U
	mine   uint32
	theirs uint32
}

func (s *slot[A, B]) first() core[A, B] {
	return core[A, B]{state: &s.state, own: &s.a, other: &s.b, mine: stateFirst, theirs: stateSecond}
}

func (s *slot[A, B]) second() core[B, A] {
	return core[B, A]{state: &s.state, own: &s.b, other: &s.a, mine: stateSecond, theirs: stateFirst}
}

// deposit attempts to place v into the slot.
//
// Never blocks. The only competing writer is the peer's single terminal
// transition, so the loop settles after at most one failed CAS.
// On gotOther the peer's value is moved out of the slot and returned.
func (c core[T, U]) deposit(v T) (outcome, U) {
	var none U
	st := c.state.Load()
	for {
		switch st {
		case stateEmpty:
			*c.own = v
			if c.state.CompareAndSwap(stateEmpty, c.mine) {
				return deposited, none
			}
			var zero T
			*c.own = zero
		case c.theirs:
			if c.state.CompareAndSwap(c.theirs, stateClosed) {
				other := *c.other
				*c.other = none
				return gotOther, other
			}
		case stateDisconnected:
			if c.state.CompareAndSwap(stateDisconnected, stateClosed) {
				return peerGone, none
			}
		default:
			// Closed: the peer's terminal action already resolved the slot.
			return peerGone, none
		}
		st = c.state.Load()
	}
}

// markGone records that the owner was discarded without depositing.
// A value deposited by the peer is dropped in place, unobserved.
// Idempotent once the slot is Closed.
func (c core[T, U]) markGone() {
	for {
		switch st := c.state.Load(); st {
		case stateEmpty:
			if c.state.CompareAndSwap(stateEmpty, stateDisconnected) {
				return
			}
		case c.theirs:
			if c.state.CompareAndSwap(c.theirs, stateClosed) {
				var none U
				*c.other = none
				return
			}
		case stateDisconnected:
			if c.state.CompareAndSwap(stateDisconnected, stateClosed) {
				return
			}
		default:
			return
		}
	}
}
