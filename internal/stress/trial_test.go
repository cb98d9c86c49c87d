// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/either"
)

func TestClassify(t *testing.T) {
	va, vb := payloads(35)
	require.Equal(t, "z", vb)

	lostA := &either.SendError[uint64, string]{Kind: either.Received, Value: va, Other: vb}
	lostB := &either.SendError[string, uint64]{Kind: either.Received, Value: vb, Other: va}
	goneA := &either.SendError[uint64, string]{Kind: either.Disconnected, Value: va}
	goneB := &either.SendError[string, uint64]{Kind: either.Disconnected, Value: vb}
	wrongOther := &either.SendError[string, uint64]{Kind: either.Received, Value: vb, Other: va + 1}

	cases := []struct {
		name       string
		mode       Mode
		errA, errB error
		want       Verdict
	}{
		{"first won", SendSend, nil, lostB, FirstWon},
		{"second won", SendSend, lostA, nil, SecondWon},
		{"both succeeded", SendSend, nil, nil, Invalid},
		{"both lost", SendSend, lostA, lostB, Invalid},
		{"wrong value recovered", SendSend, nil, wrongOther, Invalid},
		{"send/discard deposited", SendDiscard, nil, nil, Abandoned},
		{"send/discard gone", SendDiscard, goneA, nil, PeerGone},
		{"send/discard received", SendDiscard, lostA, nil, Invalid},
		{"discard/send deposited", DiscardSend, nil, nil, Abandoned},
		{"discard/send gone", DiscardSend, nil, goneB, PeerGone},
		{"discard/discard", DiscardDiscard, nil, nil, BothDiscarded},
		{"discard failed", DiscardDiscard, errors.New("boom"), nil, Invalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, detail := classify(c.mode, va, vb, c.errA, c.errB)
			assert.Equal(t, c.want, got)
			if got == Invalid {
				assert.Contains(t, detail, c.mode.String())
			} else {
				assert.Empty(t, detail)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "ok", describe(nil))
	assert.Equal(t, `Received(1, "x")`,
		describe(&either.SendError[uint64, string]{Kind: either.Received, Value: 1, Other: "x"}))
	assert.Equal(t, `Disconnected("y", 0)`,
		describe(&either.SendError[string, uint64]{Kind: either.Disconnected, Value: "y"}))
	assert.Equal(t, "boom", describe(errors.New("boom")))
}

func TestRunTrialEveryMode(t *testing.T) {
	skipRace(t)
	allowed := map[Mode][]Verdict{
		SendSend:       {FirstWon, SecondWon},
		SendDiscard:    {Abandoned, PeerGone},
		DiscardSend:    {Abandoned, PeerGone},
		DiscardDiscard: {BothDiscarded},
	}
	for _, m := range Modes {
		for seq := range uint64(200) {
			res := RunTrial(m, seq)
			require.Equal(t, m, res.Mode)
			require.Equal(t, seq, res.Seq)
			require.Contains(t, allowed[m], res.Verdict, res.Detail)
		}
	}
}
