// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"code.hybscloud.com/kont"
)

// Drive runs a batch of Expr-world oneshot protocols to completion on the
// calling goroutine, multiplexed over a WakeQueue: a protocol whose
// receive is pending registers a waker carrying its index, and is only
// re-advanced after that waker fires. Does not spawn goroutines or create
// channels; waiting happens inside WakeQueue.Wait via adaptive backoff.
//
// Results are returned in input order. A protocol that never becomes
// ready (its sender neither sends nor closes) blocks Drive forever, the
// same as Exec on that protocol.
func Drive[R any](protocols []kont.Expr[R]) []R {
	results := make([]R, len(protocols))
	susps := make([]*kont.Suspension[R], len(protocols))
	// lfq requires capacity >= 2.
	q := NewWakeQueue(max(2, len(protocols)))

	pending := 0
	for i, p := range protocols {
		result, susp := Step(p)
		if susp == nil {
			results[i] = result
			continue
		}
		susps[i] = susp
		pending++
	}

	// First pass: advance every suspension once, registering wakers for
	// those not ready. A ready value completes the protocol in place
	// (single-effect protocols finish here without touching the queue).
	for i := range susps {
		if susps[i] != nil {
			pending -= driveAdvance(q, results, susps, uint32(i))
		}
	}

	for pending > 0 {
		tok := q.Wait()
		if int(tok) >= len(susps) || susps[tok] == nil {
			// Stale token: the registration already completed.
			continue
		}
		pending -= driveAdvance(q, results, susps, tok)
	}
	return results
}

// driveAdvance advances one suspended protocol as far as it will go,
// re-registering its waker at the first pending receive. Returns 1 when
// the protocol completed, 0 when it is parked on its waker again.
func driveAdvance[R any](q *WakeQueue, results []R, susps []*kont.Suspension[R], tok uint32) int {
	wake := q.Waker(tok)
	for {
		result, next, err := AdvanceWake(susps[tok], wake)
		if err != nil {
			// Waker registered; the sender will fire it.
			return 0
		}
		if next == nil {
			results[tok] = result
			susps[tok] = nil
			return 1
		}
		susps[tok] = next
	}
}
