// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// DepositBind deposits v on ep and passes the Result to f.
// Fuses Perform(Deposit[T, U]{Sender: ep, Value: v}) + Bind.
func DepositBind[T, U, B any](ep *Sender[T, U], v T, f func(Result[T, U]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Deposit[T, U]{Sender: ep, Value: v}), f)
}

// DepositThen deposits v on ep, ignores the Result, and continues with next.
// Fuses Perform(Deposit[T, U]{Sender: ep, Value: v}) + Then.
func DepositThen[T, U, B any](ep *Sender[T, U], v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Deposit[T, U]{Sender: ep, Value: v}), next)
}

// DiscardThen drops ep unused and continues with next.
// Fuses Perform(Discard[T, U]{Sender: ep}) + Then.
func DiscardThen[T, U, B any](ep *Sender[T, U], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Discard[T, U]{Sender: ep}), next)
}

// DiscardDone drops ep unused and returns a.
// Fuses Perform(Discard[T, U]{Sender: ep}) + Then + Pure.
func DiscardDone[T, U, A any](ep *Sender[T, U], a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Discard[T, U]{Sender: ep}), kont.Pure(a))
}
