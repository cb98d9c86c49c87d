// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stress

import (
	"math/rand/v2"
)

// Mode selects what each endpoint of a trial does.
type Mode uint8

const (
	SendSend Mode = iota
	SendDiscard
	DiscardSend
	DiscardDiscard
)

// Modes lists every Mode in declaration order.
var Modes = [...]Mode{SendSend, SendDiscard, DiscardSend, DiscardDiscard}

func (m Mode) String() string {
	switch m {
	case SendSend:
		return "send/send"
	case SendDiscard:
		return "send/discard"
	case DiscardSend:
		return "discard/send"
	case DiscardDiscard:
		return "discard/discard"
	}
	return "mode(?)"
}

// sends reports whether the first and second endpoints send in m.
func (m Mode) sends() (first, second bool) {
	switch m {
	case SendSend:
		return true, true
	case SendDiscard:
		return true, false
	case DiscardSend:
		return false, true
	}
	return false, false
}

// Verdict classifies the joint result of one trial.
type Verdict uint8

const (
	// FirstWon: both sent, the first deposited, the second got Received.
	FirstWon Verdict = iota
	// SecondWon: both sent, the second deposited, the first got Received.
	SecondWon
	// Abandoned: one endpoint deposited and its peer was discarded.
	Abandoned
	// PeerGone: the sending endpoint found its peer already discarded.
	PeerGone
	// BothDiscarded: neither endpoint sent.
	BothDiscarded
	// Invalid: the results fall outside the documented outcome space.
	Invalid
)

// Verdicts lists every Verdict in declaration order.
var Verdicts = [...]Verdict{FirstWon, SecondWon, Abandoned, PeerGone, BothDiscarded, Invalid}

func (v Verdict) String() string {
	switch v {
	case FirstWon:
		return "first-won"
	case SecondWon:
		return "second-won"
	case Abandoned:
		return "abandoned"
	case PeerGone:
		return "peer-gone"
	case BothDiscarded:
		return "both-discarded"
	case Invalid:
		return "invalid"
	}
	return "verdict(?)"
}

// Mix holds relative weights for picking a Mode.
type Mix struct {
	SendSend       int
	SendDiscard    int
	DiscardSend    int
	DiscardDiscard int
}

func (m Mix) weights() [len(Modes)]int {
	return [len(Modes)]int{m.SendSend, m.SendDiscard, m.DiscardSend, m.DiscardDiscard}
}

func (m Mix) total() int {
	n := 0
	for _, w := range m.weights() {
		n += w
	}
	return n
}

// Pick draws a Mode with probability proportional to its weight.
// The mix must have a positive total weight.
func (m Mix) Pick(r *rand.Rand) Mode {
	n := r.IntN(m.total())
	for i, w := range m.weights() {
		if n < w {
			return Modes[i]
		}
		n -= w
	}
	return DiscardDiscard
}
