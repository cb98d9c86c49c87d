// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// Result is the resumption value of a Deposit: Right on a successful
// deposit, Left with the *SendError when the endpoint lost.
type Result[T, U any] = kont.Either[*SendError[T, U], struct{}]

// slotDispatcher is the structural interface for slot operations.
// DispatchSlot never blocks: a slot resolves from its current state.
type slotDispatcher interface {
	DispatchSlot() kont.Resumed
}

// Deposit is the effect operation for sending Value on Sender.
// Perform(Deposit[T, U]{Sender: ep, Value: v}) resolves ep's slot.
type Deposit[T, U any] struct {
	kont.Phantom[Result[T, U]]
	Sender *Sender[T, U]
	Value  T
}

// DispatchSlot performs the deposit. Panics if Sender was already used.
func (d Deposit[T, U]) DispatchSlot() kont.Resumed {
	if err := d.Sender.Send(d.Value); err != nil {
		return kont.Left[*SendError[T, U], struct{}](err.(*SendError[T, U]))
	}
	return kont.Right[*SendError[T, U]](struct{}{})
}

// Discard is the effect operation for dropping Sender unused.
// Perform(Discard[T, U]{Sender: ep}) notifies ep's peer. Idempotent.
type Discard[T, U any] struct {
	kont.Phantom[struct{}]
	Sender *Sender[T, U]
}

// DispatchSlot closes the endpoint.
func (d Discard[T, U]) DispatchSlot() kont.Resumed {
	d.Sender.Close()
	return struct{}{}
}
