// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stress

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/either"
)

// Result is the classified outcome of one trial.
type Result struct {
	Seq     uint64
	Mode    Mode
	Verdict Verdict
	// Detail describes an Invalid verdict.
	Detail string
}

// payloads derives the two distinct values a trial deposits.
func payloads(seq uint64) (uint64, string) {
	return seq, strconv.FormatUint(seq, 36)
}

// RunTrial resolves one fresh pair under mode with both endpoints acting
// from separate goroutines, and classifies the result.
func RunTrial(mode Mode, seq uint64) Result {
	sendA, sendB := mode.sends()
	va, vb := payloads(seq)
	a, b := either.New[uint64, string]()

	var ready atomix.Uint32
	var errA error
	done := make(chan struct{})
	go func() {
		defer close(done)
		arrive(&ready)
		errA = act(a, sendA, va)
	}()
	arrive(&ready)
	errB := act(b, sendB, vb)
	<-done

	v, detail := classify(mode, va, vb, errA, errB)
	return Result{Seq: seq, Mode: mode, Verdict: v, Detail: detail}
}

// arrive spins, yielding, until both trial goroutines are ready.
func arrive(ready *atomix.Uint32) {
	ready.Add(1)
	for ready.Load() < 2 {
		runtime.Gosched()
	}
}

func act[T, U any](ep *either.Sender[T, U], send bool, v T) error {
	if send {
		return ep.Send(v)
	}
	return ep.Close()
}

// classify maps a trial's two errors onto a Verdict.
func classify(mode Mode, va uint64, vb string, errA, errB error) (Verdict, string) {
	switch mode {
	case SendSend:
		switch {
		case errA == nil && errB != nil:
			se, ok := either.AsSendError[string, uint64](errB)
			if ok && se.Kind == either.Received && se.Value == vb && se.Other == va {
				return FirstWon, ""
			}
		case errB == nil && errA != nil:
			se, ok := either.AsSendError[uint64, string](errA)
			if ok && se.Kind == either.Received && se.Value == va && se.Other == vb {
				return SecondWon, ""
			}
		}
	case SendDiscard:
		if errB == nil {
			if errA == nil {
				return Abandoned, ""
			}
			if se, ok := either.AsSendError[uint64, string](errA); ok && se.Kind == either.Disconnected && se.Value == va {
				return PeerGone, ""
			}
		}
	case DiscardSend:
		if errA == nil {
			if errB == nil {
				return Abandoned, ""
			}
			if se, ok := either.AsSendError[string, uint64](errB); ok && se.Kind == either.Disconnected && se.Value == vb {
				return PeerGone, ""
			}
		}
	case DiscardDiscard:
		if errA == nil && errB == nil {
			return BothDiscarded, ""
		}
	}
	return Invalid, fmt.Sprintf("%s: first=%s second=%s", mode, describe(errA), describe(errB))
}

func describe(err error) string {
	if err == nil {
		return "ok"
	}
	var u *either.SendError[uint64, string]
	if errors.As(err, &u) {
		return fmt.Sprintf("%s(%d, %q)", u.Kind, u.Value, u.Other)
	}
	var s *either.SendError[string, uint64]
	if errors.As(err, &s) {
		return fmt.Sprintf("%s(%q, %d)", s.Kind, s.Value, s.Other)
	}
	return err.Error()
}
