// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"errors"
)

// Kind classifies a failed Send.
type Kind uint8

const (
	// Received means the peer deposited first.
	Received Kind = iota + 1
	// Disconnected means the peer was discarded without depositing.
	Disconnected
)

func (k Kind) String() string {
	switch k {
	case Received:
		return "Received"
	case Disconnected:
		return "Disconnected"
	}
	return "Kind(?)"
}

var (
	// ErrReceived is matched by errors.Is for a SendError of Kind Received.
	ErrReceived = errors.New("either: peer already sent")
	// ErrDisconnected is matched by errors.Is for a SendError of Kind Disconnected.
	ErrDisconnected = errors.New("either: peer disconnected")
)

// SendError is returned by Send when the endpoint lost the race.
// Value is always the caller's own value. Other is the peer's value
// when Kind is Received, and the zero U otherwise.
type SendError[T, U any] struct {
	Kind  Kind
	Value T
	Other U
}

func (e *SendError[T, U]) Error() string {
	return e.Unwrap().Error()
}

// Unwrap returns ErrReceived or ErrDisconnected.
func (e *SendError[T, U]) Unwrap() error {
	if e.Kind == Received {
		return ErrReceived
	}
	return ErrDisconnected
}

// Received returns both values if the peer deposited first.
func (e *SendError[T, U]) Received() (own T, other U, ok bool) {
	if e.Kind != Received {
		return e.Value, other, false
	}
	return e.Value, e.Other, true
}

// Disconnected returns the caller's value if the peer was discarded.
func (e *SendError[T, U]) Disconnected() (own T, ok bool) {
	return e.Value, e.Kind == Disconnected
}

// AsSendError finds the first *SendError[T, U] in err's chain.
func AsSendError[T, U any](err error) (*SendError[T, U], bool) {
	var se *SendError[T, U]
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
