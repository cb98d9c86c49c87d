// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// Loop iterates a slot protocol over a state S until step finishes.
// step returns Left(next) to take another turn, typically on the next
// endpoint of a pool, or Right(result) to stop. DepositAny is a Loop
// over pool positions.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(turn kont.Either[S, A]) kont.Eff[A] {
		if next, ok := turn.GetLeft(); ok {
			return Loop(next, step)
		}
		result, _ := turn.GetRight()
		return kont.Pure(result)
	})
}

// ExprLoop is Loop for Expr-world protocols. A step that completes
// without suspending is unrolled in place; otherwise the next turn is
// chained behind the step's frames with a single bind frame.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	turn := step(initial)
	if _, done := turn.Frame.(kont.ReturnFrame); done {
		if next, ok := turn.Value.GetLeft(); ok {
			return ExprLoop(next, step)
		}
		result, _ := turn.Value.GetRight()
		return kont.ExprReturn(result)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(v kont.Erased) kont.Expr[kont.Erased] {
		if next, ok := v.(kont.Either[S, A]).GetLeft(); ok {
			rest := ExprLoop(next, step)
			return kont.Expr[kont.Erased]{Value: kont.Erased(rest.Value), Frame: rest.Frame}
		}
		result, _ := v.(kont.Either[S, A]).GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(result), Frame: exprReturnFrame}
	}
	bf.Next = exprReturnFrame
	var zero A
	return kont.Expr[A]{Value: zero, Frame: kont.ChainFrames(turn.Frame, bf)}
}

// DepositAny deposits v on pool[0], pool[1], ... until one deposit wins.
// Returns the winning index, or -1 if every position was lost. Each
// attempt consumes its endpoint; positions after the winner are untouched.
func DepositAny[T, U any](pool []*Sender[T, U], v T) kont.Eff[int] {
	return Loop(0, func(i int) kont.Eff[kont.Either[int, int]] {
		if i >= len(pool) {
			return kont.Pure(kont.Right[int, int](-1))
		}
		return DepositBind(pool[i], v, func(r Result[T, U]) kont.Eff[kont.Either[int, int]] {
			if r.IsRight() {
				return kont.Pure(kont.Right[int, int](i))
			}
			return kont.Pure(kont.Left[int, int](i + 1))
		})
	})
}

// ExprDepositAny is DepositAny for Expr-world protocols.
func ExprDepositAny[T, U any](pool []*Sender[T, U], v T) kont.Expr[int] {
	return ExprLoop(0, func(i int) kont.Expr[kont.Either[int, int]] {
		if i >= len(pool) {
			return kont.ExprReturn(kont.Right[int, int](-1))
		}
		return ExprDepositBind(pool[i], v, func(r Result[T, U]) kont.Expr[kont.Either[int, int]] {
			if r.IsRight() {
				return kont.ExprReturn(kont.Right[int, int](i))
			}
			return kont.ExprReturn(kont.Left[int, int](i + 1))
		})
	})
}
