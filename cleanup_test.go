// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"errors"
	"runtime"
	"testing"
	"time"
)

// abandonFirst creates the first endpoint of s and drops it unused.
//
//go:noinline
func abandonFirst(s *slot[int, int]) {
	_ = newSender(s.first(), nextSerial())
}

func TestUnreachableEndpointIsDiscarded(t *testing.T) {
	s := &slot[int, int]{}
	abandonFirst(s)
	b := newSender(s.second(), nextSerial())

	deadline := time.Now().Add(5 * time.Second)
	for s.state.Load() == stateEmpty {
		if time.Now().After(deadline) {
			t.Fatal("abandoned endpoint was never discarded")
		}
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
	if got := s.state.Load(); got != stateDisconnected {
		t.Fatalf("state %d, want Disconnected", got)
	}
	if err := b.Send(1); !errors.Is(err, ErrDisconnected) {
		t.Fatalf("Send after peer was collected got %v, want ErrDisconnected", err)
	}
}

func TestCleanupStoppedAfterSend(t *testing.T) {
	s := &slot[int, int]{}
	a := newSender(s.first(), nextSerial())
	if err := a.Send(1); err != nil {
		t.Fatalf("Send: %v", err)
	}
	a = nil
	runtime.GC()
	runtime.GC()
	time.Sleep(10 * time.Millisecond)

	// The collected first endpoint must not have discarded the slot again.
	if got := s.state.Load(); got != stateFirst {
		t.Fatalf("state %d, want First", got)
	}
}
