// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// WakeQueue is a bounded multi-producer single-consumer ready queue for
// driving suspended receives from a single scheduler goroutine. Wakers
// created by Waker enqueue their token when the channel side fires them;
// the scheduler drains tokens with Next or Wait and re-advances the
// corresponding suspension.
//
// Each waiter registration fires its waker at most once, so a queue sized
// to the number of outstanding registrations cannot overflow.
type WakeQueue struct {
	ready lfq.Queue[uint32]
}

// NewWakeQueue creates a ready queue holding at least capacity tokens
// (lfq rounds up to the next power of two).
func NewWakeQueue(capacity int) *WakeQueue {
	return &WakeQueue{ready: lfq.NewMPSC[uint32](capacity)}
}

// Waker returns a wake callback that enqueues token when invoked.
// Suitable for Receiver.Poll and AdvanceWake. Invocable from any
// goroutine; the sender side of each channel is the producer.
func (q *WakeQueue) Waker(token uint32) func() {
	return func() {
		t := token
		_ = q.ready.Enqueue(&t)
	}
}

// Next dequeues the next ready token without blocking.
// Returns iox.ErrWouldBlock while no waker has fired.
func (q *WakeQueue) Next() (uint32, error) {
	return q.ready.Dequeue()
}

// Wait dequeues the next ready token, waiting with adaptive backoff
// (iox.Backoff) while the queue is idle.
func (q *WakeQueue) Wait() uint32 {
	var bo iox.Backoff
	for {
		t, err := q.ready.Dequeue()
		if err == nil {
			return t
		}
		bo.Wait()
	}
}
