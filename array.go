// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Array creates n independent endpoint pairs over one payload type.
// firsts[i] and seconds[i] share the i-th slot; no state is shared
// across positions. Panics if n is negative.
func Array[T any](n int) (firsts, seconds []*Sender[T, T]) {
	if n < 0 {
		panic("either: negative array length")
	}
	firsts = make([]*Sender[T, T], n)
	seconds = make([]*Sender[T, T], n)
	for i := range n {
		firsts[i], seconds[i] = New[T, T]()
	}
	return firsts, seconds
}

// CloseAll discards every endpoint in eps that has not acted.
// Nil entries are skipped.
func CloseAll[T, U any](eps []*Sender[T, U]) {
	for _, ep := range eps {
		if ep != nil {
			ep.Close()
		}
	}
}
