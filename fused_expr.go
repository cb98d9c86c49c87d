// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated return frame to avoid boxing ReturnFrame{} on every
// Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func depositBindUnwind[T, U, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Result[T, U]) kont.Expr[B])
	result := f(current.(Result[T, U]))
	return kont.Erased(result.Value), result.Frame
}

// ExprDepositBind deposits v on ep and passes the Result to f.
// Fuses ExprPerform(Deposit[T, U]{Sender: ep, Value: v}) + ExprBind.
func ExprDepositBind[T, U, B any](ep *Sender[T, U], v T, f func(Result[T, U]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = depositBindUnwind[T, U, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Deposit[T, U]{Sender: ep, Value: v}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprDepositThen deposits v on ep, ignores the Result, and continues with next.
// Fuses ExprPerform(Deposit[T, U]{Sender: ep, Value: v}) + ExprThen.
func ExprDepositThen[T, U, B any](ep *Sender[T, U], v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Deposit[T, U]{Sender: ep, Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprDiscardThen drops ep unused and continues with next.
// Fuses ExprPerform(Discard[T, U]{Sender: ep}) + ExprThen.
func ExprDiscardThen[T, U, B any](ep *Sender[T, U], next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Discard[T, U]{Sender: ep}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprDiscardDone drops ep unused and returns a.
// Fuses ExprPerform(Discard[T, U]{Sender: ep}) + ExprThen + ExprReturn.
func ExprDiscardDone[T, U, A any](ep *Sender[T, U], a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Discard[T, U]{Sender: ep}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}
