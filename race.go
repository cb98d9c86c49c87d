// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// Race creates a slot pair, runs a Cont-world protocol against each
// endpoint, and returns both results. Execution interleaves the two
// protocols on the calling goroutine one effect at a time, the first
// protocol first.
// Does not spawn goroutines.
//
// An endpoint its protocol never used is discarded once both protocols
// complete.
func Race[A, B, RA, RB any](a func(*Sender[A, B]) kont.Eff[RA], b func(*Sender[B, A]) kont.Eff[RB]) (RA, RB) {
	return RaceExpr(
		func(ep *Sender[A, B]) kont.Expr[RA] { return Reify(a(ep)) },
		func(ep *Sender[B, A]) kont.Expr[RB] { return Reify(b(ep)) },
	)
}

// RaceExpr is Race for Expr-world protocols.
func RaceExpr[A, B, RA, RB any](a func(*Sender[A, B]) kont.Expr[RA], b func(*Sender[B, A]) kont.Expr[RB]) (RA, RB) {
	epA, epB := New[A, B]()
	defer epA.Close()
	defer epB.Close()

	resultA, suspA := Step(a(epA))
	resultB, suspB := Step(b(epB))
	for suspA != nil || suspB != nil {
		if suspA != nil {
			resultA, suspA = Advance(suspA)
		}
		if suspB != nil {
			resultB, suspB = Advance(suspB)
		}
	}
	return resultA, resultB
}
