// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// slotHandler implements kont.Handler for slot effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type slotHandler struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (slotHandler) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(slotDispatcher)
	if !ok {
		panic("either: unhandled effect in slotHandler")
	}
	return sop.DispatchSlot(), true
}

// Exec runs a Cont-world slot protocol to completion.
// Never blocks: every Deposit and Discard resolves immediately.
func Exec[R any](protocol kont.Eff[R]) R {
	return kont.Handle(protocol, slotHandler{})
}

// ExecExpr runs an Expr-world slot protocol to completion.
func ExecExpr[R any](protocol kont.Expr[R]) R {
	return kont.HandleExpr(protocol, slotHandler{})
}
