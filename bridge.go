// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"code.hybscloud.com/kont"
)

// Reify turns a Cont-world slot protocol into frames, so that Race can
// step it one Deposit or Discard at a time with Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect wraps an Expr-world slot protocol as an Eff for Exec and for
// composing with DepositBind and the other Cont-world constructors.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
