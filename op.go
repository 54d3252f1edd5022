// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"code.hybscloud.com/kont"
)

// Await is the effect operation for receiving the channel's single value.
// Perform(Await[T]{Rx: rx}) resumes with Right(value) on delivery or
// Left(ErrClosed) when the sender departed without sending.
type Await[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	Rx *Receiver[T]
}

// awaitDispatcher is the structural interface for oneshot effect ops.
// DispatchAwait is non-blocking: it returns iox.ErrWouldBlock while no
// value has been published yet (the suspension boundary).
type awaitDispatcher interface {
	DispatchAwait() (kont.Resumed, error)
}

// awaitWakeDispatcher is the waker-registering variant used by AdvanceWake
// and Drive: instead of requiring the caller to re-poll, a pending dispatch
// stores wake as the channel's waiter.
type awaitWakeDispatcher interface {
	DispatchAwaitWake(wake func()) (kont.Resumed, error)
}

// DispatchAwait handles Await by a single wait-free poll of the receiver.
func (a Await[T]) DispatchAwait() (kont.Resumed, error) {
	v, err := a.Rx.TryRecv()
	return awaitResumed[T](v, err)
}

// DispatchAwaitWake handles Await by a cooperative poll, registering wake
// (last write wins) when no value is ready.
func (a Await[T]) DispatchAwaitWake(wake func()) (kont.Resumed, error) {
	v, err := a.Rx.Poll(wake)
	return awaitResumed[T](v, err)
}

// awaitResumed folds a receive outcome into the three-outcome poll
// contract: Right(value), Left(err), or pending (non-nil error).
func awaitResumed[T any](v T, err error) (kont.Resumed, error) {
	if err == nil {
		return kont.Right[error](v), nil
	}
	if IsWouldBlock(err) {
		return nil, err
	}
	return kont.Left[error, T](err), nil
}
