// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package oneshot provides a lock-free single-producer single-consumer
// channel carrying exactly one value, usable across goroutines and inside
// cooperative schedulers built on [code.hybscloud.com/kont].
//
// Exactly one value crosses from a [Sender] to a [Receiver], after which the
// channel is permanently closed. The receiving side is free to wait by
// parking its goroutine, by cooperative suspension, or by non-blocking polls.
//
// # Architecture
//
//   - State machine: one atomic tag via [code.hybscloud.com/atomix] coordinates
//     handoff, wakeup and payload disposal. [New] creates a Sender/Receiver pair.
//   - Non-blocking: [Receiver.TryRecv] and [Receiver.Poll] return
//     [code.hybscloud.com/iox.ErrWouldBlock] while no value is published.
//   - Blocking: [Receiver.Recv] parks the calling goroutine until the sender
//     acts; [Receiver.RecvTimeout] and [Receiver.RecvDeadline] bound the wait.
//   - Cooperative: [Await] is a kont effect operation with the three-outcome
//     poll contract. [Exec] evaluates blocking via adaptive backoff; [Step] and
//     [Advance] integrate with a proactor loop; [AdvanceWake] registers a wake
//     callback instead of requiring the caller to re-poll.
//   - Scheduling: [WakeQueue] is an executor-style ready queue on
//     [code.hybscloud.com/lfq]; [Drive] multiplexes many suspended receives on
//     one goroutine.
//
// # Failure Semantics
//
// All failures are returned, never raised. [ErrClosed] means the counterpart
// departed before the handoff completed, or the single value was already
// taken. [ErrTimeout] means a bounded receive elapsed; the channel stays open
// and the receive may be retried. [code.hybscloud.com/iox.ErrWouldBlock] is
// the only non-terminal failure: no value yet, try again.
//
// # Example
//
//	tx, rx := oneshot.New[int]()
//	go func() {
//		_ = tx.Send(42)
//	}()
//	v, err := rx.Recv()
//	if err != nil {
//		// sender departed without sending
//	}
//	_ = v // 42
package oneshot
