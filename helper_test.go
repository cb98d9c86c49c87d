// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"fmt"
	"runtime"

	"code.hybscloud.com/atomix"
)

// fmtWrap wraps err the way callers typically annotate a lost handoff.
func fmtWrap(err error) error {
	return fmt.Errorf("handoff: %w", err)
}

// gate releases n goroutines at once so their slot actions overlap.
type gate struct {
	ready atomix.Uint32
	n     uint32
}

func newGate(n int) *gate {
	return &gate{n: uint32(n)}
}

// arrive blocks the caller, yielding, until all n parties have arrived.
func (g *gate) arrive() {
	g.ready.Add(1)
	for g.ready.Load() < g.n {
		runtime.Gosched()
	}
}
