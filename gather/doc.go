// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gather provides an N-party, one-shot collecting slot.
//
// [New] creates n [Sender] values over one shared slot. Each sender acts
// once: [Sender.Send] places a value, [Sender.Close] drops the sender.
// Whichever sender acts last completes the slot. If that last action is a
// Send, the sender receives every placed value in index order; dropped
// positions are skipped. If it is a Close, the placed values are released
// unobserved.
//
// [NewTuple2], [NewTuple3] and [NewTuple4] build fixed-arity gathers whose
// positions carry different payload types. Each position has its own
// [Part] sender; the completing sender receives a TupleN in which every
// position is an [Opt], absent when that position was dropped.
//
// The slot is lock-free: one atomic countdown, no waiting. Unlike
// [code.hybscloud.com/either], no sender ever learns whether it lost; only
// the completing sender observes anything.
package gather
