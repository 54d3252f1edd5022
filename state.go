// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// State tag values. Every transition is a single CAS on the tag; mutation
// rights over the payload and waiter slots are granted only by winning a
// CAS, never by assumption.
//
//	empty    — no payload, no waiter, both handles live
//	waiting  — no payload yet; a waiter (parker token or wake callback)
//	           is registered
//	message  — payload published, not yet consumed; sender is done
//	closed   — one side departed before the handoff completed, or the
//	           payload was already consumed
const (
	stateEmpty uint32 = iota
	stateWaiting
	stateMessage
	stateClosed
)

// cell is the heap block shared by exactly one Sender and one Receiver.
// No reference count: exactly two handles exist by construction and the
// collector reclaims the cell once both drop it. The transition table still
// assigns payload-disposal duty so no value outlives interest in it.
type cell[T any] struct {
	state atomix.Uint32

	// value is written once, by the sender, before its empty/waiting→message
	// CAS publishes it (store-release on the tag), and moved out once, by
	// the receiver, after an acquire load observes message.
	value T

	// waker holds the most recently registered waiter. The receiver writes
	// it only while it owns the slot (tag empty, or after winning the
	// waiting→empty retraction), and the sender reads it only after moving
	// the tag out of waiting. Last write wins: re-registration discards the
	// previous waiter without invoking it.
	waker func()

	serial Serial
}

// send publishes v. Prior empty: plain handoff. Prior waiting: handoff plus
// waiter invocation. Prior closed: the receiver departed, v is never stored
// and the caller keeps it. Never blocks; the CAS loop retries only on a
// transient tag change made by the receiver.
func (c *cell[T]) send(v T) error {
	for {
		switch c.state.Load() {
		case stateEmpty:
			c.value = v
			if c.state.CompareAndSwap(stateEmpty, stateMessage) {
				return nil
			}
			// The receiver registered a waiter or departed between the
			// load and the CAS. Withdraw the speculative store and retry
			// with a fresh tag.
			var zero T
			c.value = zero
		case stateWaiting:
			c.value = v
			if c.state.CompareAndSwap(stateWaiting, stateMessage) {
				// The waiter slot is stable here: the receiver wrote it
				// before its CAS into waiting and relinquished the slot.
				if w := c.waker; w != nil {
					w()
				}
				return nil
			}
			var zero T
			c.value = zero
		case stateClosed:
			return ErrClosed
		default:
			// message can only be observed by a second Send on the same
			// handle: a logic defect, not a runtime condition.
			panic("oneshot: send on a spent channel")
		}
	}
}

// closeSend marks the producer departed without sending. A registered
// waiter is invoked so the receiver observes the disconnect. After a
// completed send the tag is message and there is nothing to revoke.
// Idempotent.
func (c *cell[T]) closeSend() {
	for {
		switch c.state.Load() {
		case stateEmpty:
			if c.state.CompareAndSwap(stateEmpty, stateClosed) {
				return
			}
		case stateWaiting:
			if c.state.CompareAndSwap(stateWaiting, stateClosed) {
				if w := c.waker; w != nil {
					w()
				}
				return
			}
		default:
			return
		}
	}
}

// closeRecv marks the consumer departed. An unread payload is destroyed
// here: the sender committed it and will never touch the cell again, so
// the dropping side owns disposal. Idempotent.
func (c *cell[T]) closeRecv() {
	for {
		switch c.state.Load() {
		case stateEmpty:
			if c.state.CompareAndSwap(stateEmpty, stateClosed) {
				return
			}
		case stateWaiting:
			// Our own registration; the waiter is discarded uninvoked.
			if c.state.CompareAndSwap(stateWaiting, stateClosed) {
				return
			}
		case stateMessage:
			if c.state.CompareAndSwap(stateMessage, stateClosed) {
				var zero T
				c.value = zero
				return
			}
		default:
			return
		}
	}
}

// take moves the published payload out and closes the channel.
// Caller must have observed message. The waiter slot is deliberately left
// alone: after a waiting→message transition the sender may still be
// reading it.
func (c *cell[T]) take() T {
	v := c.value
	var zero T
	c.value = zero
	c.state.Store(stateClosed)
	return v
}

// tryRecv is the wait-free poll: a bounded number of atomic steps,
// independent of the sender's scheduling delay. Leaves an existing waiter
// registration untouched so a later suspension can still succeed.
func (c *cell[T]) tryRecv() (T, error) {
	switch c.state.Load() {
	case stateMessage:
		return c.take(), nil
	case stateClosed:
		var zero T
		return zero, ErrClosed
	default:
		var zero T
		return zero, iox.ErrWouldBlock
	}
}

// poll is the cooperative-suspension receive: ready with the payload,
// ready with ErrClosed, or iox.ErrWouldBlock after registering wake as the
// waiter. Re-registration unconditionally overwrites the previous wake
// callback — the consumer task may have migrated schedulers and only the
// most recent callback is guaranteed valid.
func (c *cell[T]) poll(wake func()) (T, error) {
	for {
		switch c.state.Load() {
		case stateMessage:
			return c.take(), nil
		case stateClosed:
			var zero T
			return zero, ErrClosed
		case stateEmpty:
			c.waker = wake
			if c.state.CompareAndSwap(stateEmpty, stateWaiting) {
				var zero T
				return zero, iox.ErrWouldBlock
			}
			// The sender published or departed between the load and the
			// CAS; the fresh read resolves it.
		default:
			// waiting: retract to empty to regain the waiter slot, then
			// store the fresh callback. Losing the retraction means the
			// sender acted; the fresh read resolves it.
			if c.state.CompareAndSwap(stateWaiting, stateEmpty) {
				continue
			}
		}
	}
}

// recv parks the calling goroutine until the sender publishes a value or
// departs. A cooperative registration left by an earlier poll is replaced
// by the parker token (last write wins).
func (c *cell[T]) recv() (T, error) {
	for {
		switch c.state.Load() {
		case stateMessage:
			return c.take(), nil
		case stateClosed:
			var zero T
			return zero, ErrClosed
		case stateEmpty:
			p := newParker()
			c.waker = p.unpark
			if c.state.CompareAndSwap(stateEmpty, stateWaiting) {
				p.park()
			}
			// Unparked, or lost the CAS to the sender; the fresh read
			// resolves it either way.
		default:
			if c.state.CompareAndSwap(stateWaiting, stateEmpty) {
				continue
			}
		}
	}
}

// recvDeadline is recv with an absolute deadline. On timeout the receiver
// retracts its own registration (waiting→empty) and the channel stays
// open. Losing the retraction means the sender acted at the deadline; the
// value is then consumed rather than discarded — delivery wins the tie.
func (c *cell[T]) recvDeadline(deadline time.Time) (T, error) {
	for {
		switch c.state.Load() {
		case stateMessage:
			return c.take(), nil
		case stateClosed:
			var zero T
			return zero, ErrClosed
		case stateEmpty:
			p := newParker()
			c.waker = p.unpark
			if c.state.CompareAndSwap(stateEmpty, stateWaiting) {
				if !p.parkDeadline(deadline) {
					return c.retract()
				}
			}
		default:
			if c.state.CompareAndSwap(stateWaiting, stateEmpty) {
				continue
			}
		}
	}
}

// retract withdraws the receiver's registration after a timeout.
// Out of waiting only the sender transitions, so a failed retraction can
// observe nothing but message or closed.
func (c *cell[T]) retract() (T, error) {
	if c.state.CompareAndSwap(stateWaiting, stateEmpty) {
		var zero T
		return zero, ErrTimeout
	}
	switch c.state.Load() {
	case stateMessage:
		return c.take(), nil
	case stateClosed:
		var zero T
		return zero, ErrClosed
	default:
		panic("oneshot: corrupted channel state")
	}
}
