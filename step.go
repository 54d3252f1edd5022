// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a oneshot protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended receive once, without blocking.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// after the sender makes progress.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	aop, ok := susp.Op().(awaitDispatcher)
	if !ok {
		panic("oneshot: unhandled effect in Advance")
	}
	v, err := aop.DispatchAwait()
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// AdvanceWake is Advance with waker registration: a pending dispatch
// stores wake as the channel's waiter (last write wins), so the caller
// need not re-poll until wake fires. Pair with WakeQueue.Waker for
// executor-style scheduling.
func AdvanceWake[R any](susp *kont.Suspension[R], wake func()) (R, *kont.Suspension[R], error) {
	aop, ok := susp.Op().(awaitWakeDispatcher)
	if !ok {
		panic("oneshot: unhandled effect in AdvanceWake")
	}
	v, err := aop.DispatchAwaitWake(wake)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
