// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// awaitHandler implements kont.Handler for oneshot effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch into
// blocking evaluation for Exec/ExecExpr.
type awaitHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (awaitHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	aop, ok := op.(awaitDispatcher)
	if !ok {
		panic("oneshot: unhandled effect in awaitHandler")
	}
	return dispatchWait(aop), true
}

// dispatchWait blocks until DispatchAwait succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func dispatchWait(aop awaitDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := aop.DispatchAwait()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world oneshot protocol to completion.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[R any](protocol kont.Eff[R]) R {
	return kont.Handle(protocol, awaitHandler[R]{})
}

// ExecExpr runs an Expr-world oneshot protocol to completion.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[R any](protocol kont.Expr[R]) R {
	return kont.HandleExpr(protocol, awaitHandler[R]{})
}
