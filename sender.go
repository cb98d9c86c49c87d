// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"runtime"

	"code.hybscloud.com/kont"
)

// action is the single thing an endpoint may do: Left discards, Right deposits.
type action[T any] = kont.Either[struct{}, T]

// guard is the one-shot continuation that performs an endpoint's action.
// It references only the slot, never the Sender, so it can serve as the
// argument of the Sender's cleanup.
type guard[T, U any] = kont.Affine[*SendError[T, U], action[T]]

// Sender is one of the two one-shot endpoints of a slot.
// It deposits a T; on loss it recovers the peer's U.
//
// A Sender acts exactly once: either Send or Close. A second Send panics.
// Callers should defer Close so that an endpoint which never sends still
// notifies its peer; an unreachable unused Sender is also discarded by
// the garbage collector.
type Sender[T, U any] struct {
	act     *guard[T, U]
	cleanup runtime.Cleanup
	serial  Serial
	first   bool
}

// New creates a connected endpoint pair over one fresh slot.
// The first endpoint deposits an A and recovers a B on loss;
// the second endpoint is its mirror image.
func New[A, B any]() (*Sender[A, B], *Sender[B, A]) {
	s := &slot[A, B]{}
	serial := nextSerial()
	return newSender(s.first(), serial), newSender(s.second(), serial)
}

func newSender[T, U any](c core[T, U], serial Serial) *Sender[T, U] {
	ep := &Sender[T, U]{serial: serial, first: c.mine == stateFirst}
	ep.act = kont.Once(func(a action[T]) *SendError[T, U] {
		v, ok := a.GetRight()
		if !ok {
			c.markGone()
			return nil
		}
		switch r, other := c.deposit(v); r {
		case deposited:
			return nil
		case gotOther:
			return &SendError[T, U]{Kind: Received, Value: v, Other: other}
		default:
			return &SendError[T, U]{Kind: Disconnected, Value: v}
		}
	})
	ep.cleanup = runtime.AddCleanup(ep, discard[T, U], ep.act)
	return ep
}

// discard runs the discard action unless the endpoint already acted.
func discard[T, U any](act *guard[T, U]) {
	act.TryResume(kont.Left[struct{}, T](struct{}{}))
}

// Send deposits v, consuming the endpoint.
//
// Returns nil if v was deposited first; the peer will recover it.
// Otherwise returns a *SendError carrying v back: with Kind Received and
// the peer's value if the peer deposited first, or with Kind Disconnected
// if the peer was discarded without depositing.
//
// Panics if the endpoint has already been used.
func (ep *Sender[T, U]) Send(v T) error {
	err, ok := ep.act.TryResume(kont.Right[struct{}](v))
	if !ok {
		panic("either: endpoint used twice")
	}
	ep.cleanup.Stop()
	if err != nil {
		return err
	}
	return nil
}

// Close discards the endpoint if it has not acted yet.
// A value already deposited by the peer is dropped without notice.
// Close is idempotent and a no-op after Send. It always returns nil.
func (ep *Sender[T, U]) Close() error {
	discard(ep.act)
	ep.cleanup.Stop()
	return nil
}

// First reports whether ep is the first endpoint of its pair.
func (ep *Sender[T, U]) First() bool {
	return ep.first
}

// Serial returns the serial number shared by ep and its peer.
func (ep *Sender[T, U]) Serial() Serial {
	return ep.serial
}
