// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides a two-party, one-shot, non-blocking handoff slot.
//
// [New] creates a pair of [Sender] endpoints sharing one slot. Both race to
// deposit a value. The first deposit wins silently; the loser's [Sender.Send]
// returns a [*SendError] that hands back its own value together with the
// winner's. An endpoint discarded with [Sender.Close] before sending makes
// the peer's later Send fail with Kind [Disconnected].
//
// # Architecture
//
//   - Slot: one lock-free atomic state word via [code.hybscloud.com/atomix] plus
//     one reserved cell per endpoint. Every call resolves from the state it
//     observes; nothing blocks, spins, or waits for the peer.
//   - One-shot: each endpoint is guarded by a [code.hybscloud.com/kont.Affine].
//     Send consumes the endpoint; a second Send panics. Close is idempotent.
//   - Release: an unused endpoint that becomes unreachable is discarded by
//     a runtime cleanup, so the peer always learns it is gone.
//
// # Composition
//
//   - [Array] builds N independent pairs over one payload type.
//   - [NewTuple2], [NewTuple3], [NewTuple4] build independent pairs over
//     distinct payload types, one per position.
//   - Effects: [Deposit] and [Discard] are kont operations. [DepositBind],
//     [DepositThen], [DiscardThen] and their Expr-world variants compose
//     them; [Exec], [Step]/[Advance] and [Race] evaluate them.
//
// # Example
//
//	a, b := either.New[int, rune]()
//	_ = a.Send(1)           // nil: deposited first
//	err := b.Send('x')      // *SendError{Kind: Received, Value: 'x', Other: 1}
//	if se, ok := either.AsSendError[rune, int](err); ok {
//		own, other, _ := se.Received()
//		_, _ = own, other
//	}
package either
