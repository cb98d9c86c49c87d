// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a slot protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended slot operation and resumes the protocol
// up to its next effect or completion.
//
// Unlike a session transport, a slot never reports would-block: every
// Deposit or Discard resolves immediately, so the suspension is always
// consumed.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	sop, ok := susp.Op().(slotDispatcher)
	if !ok {
		panic("either: unhandled effect in Advance")
	}
	return susp.Resume(sop.DispatchSlot())
}
