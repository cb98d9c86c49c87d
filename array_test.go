// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/either"
)

func TestArrayIndexAligned(t *testing.T) {
	firsts, seconds := either.Array[int](3)
	if len(firsts) != 3 || len(seconds) != 3 {
		t.Fatalf("lengths %d, %d, want 3, 3", len(firsts), len(seconds))
	}
	for i := range firsts {
		if firsts[i].Serial() != seconds[i].Serial() {
			t.Fatalf("position %d: serials %d != %d", i, firsts[i].Serial(), seconds[i].Serial())
		}
		if !firsts[i].First() || seconds[i].First() {
			t.Fatalf("position %d: identities swapped", i)
		}
	}
	if firsts[0].Serial() == firsts[1].Serial() {
		t.Fatal("distinct positions share a slot")
	}
}

func TestArrayPositionsIndependent(t *testing.T) {
	firsts, seconds := either.Array[string](3)

	// 0: first wins; 1: first discarded; 2: second wins.
	if err := firsts[0].Send("a0"); err != nil {
		t.Fatalf("position 0: %v", err)
	}
	firsts[1].Close()
	if err := seconds[2].Send("b2"); err != nil {
		t.Fatalf("position 2: %v", err)
	}

	err := seconds[0].Send("b0")
	if se, ok := either.AsSendError[string, string](err); !ok || se.Kind != either.Received || se.Other != "a0" {
		t.Fatalf("position 0 loser got %v", err)
	}
	if err := seconds[1].Send("b1"); !errors.Is(err, either.ErrDisconnected) {
		t.Fatalf("position 1 got %v, want ErrDisconnected", err)
	}
	err = firsts[2].Send("a2")
	if se, ok := either.AsSendError[string, string](err); !ok || se.Value != "a2" || se.Other != "b2" {
		t.Fatalf("position 2 loser got %v", err)
	}
}

func TestArrayEmpty(t *testing.T) {
	firsts, seconds := either.Array[int](0)
	if len(firsts) != 0 || len(seconds) != 0 {
		t.Fatalf("lengths %d, %d, want 0, 0", len(firsts), len(seconds))
	}
}

func TestArrayNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on negative length")
		}
	}()
	either.Array[int](-1)
}

func TestCloseAll(t *testing.T) {
	firsts, seconds := either.Array[int](4)
	if err := firsts[2].Send(2); err != nil {
		t.Fatalf("Send: %v", err)
	}
	firsts[3] = nil
	either.CloseAll(firsts)

	for i, ep := range seconds {
		err := ep.Send(10 + i)
		switch i {
		case 2:
			if !errors.Is(err, either.ErrReceived) {
				t.Fatalf("position 2 got %v, want ErrReceived", err)
			}
		case 3:
			if err != nil {
				t.Fatalf("position 3 (skipped) got %v, want nil", err)
			}
		default:
			if !errors.Is(err, either.ErrDisconnected) {
				t.Fatalf("position %d got %v, want ErrDisconnected", i, err)
			}
		}
	}
}

func TestArrayConcurrentPositions(t *testing.T) {
	skipRace(t)
	const n = 64
	firsts, seconds := either.Array[int](n)
	g := newGate(2)
	done := make(chan []error, 1)
	go func() {
		g.arrive()
		errs := make([]error, n)
		for i, ep := range firsts {
			errs[i] = ep.Send(i)
		}
		done <- errs
	}()
	g.arrive()
	errsB := make([]error, n)
	for i := n - 1; i >= 0; i-- {
		errsB[i] = seconds[i].Send(-i)
	}
	errsA := <-done

	for i := range n {
		if (errsA[i] == nil) == (errsB[i] == nil) {
			t.Fatalf("position %d: first=%v second=%v", i, errsA[i], errsB[i])
		}
	}
}
