// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stress runs adversarial trials against either slots.
//
// Each trial builds one endpoint pair and releases two goroutines through
// a start gate so that their actions (send or discard) overlap as closely
// as the scheduler allows. The joint result is classified into a [Verdict];
// a combination outside the documented outcome space is a violation.
//
// A [Runner] spreads trials over workers. Workers hand results to the
// collector through per-worker lock-free SPSC queues
// ([code.hybscloud.com/lfq]); the collector drains them with adaptive
// backoff on [code.hybscloud.com/iox.ErrWouldBlock].
package stress
