// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import "time"

// Sender is the send-once producer handle of a oneshot channel.
type Sender[T any] struct {
	c *cell[T]
}

// Receiver is the consumer handle of a oneshot channel, offering blocking,
// bounded, non-blocking and cooperative receive paths.
type Receiver[T any] struct {
	c *cell[T]
}

// New creates a oneshot channel and returns its two handles.
// The shared cell holds one atomic state tag, one payload slot and one
// waiter slot; all coordination between the handles happens through CAS
// transitions on the tag — no lock, no goroutine, no Go channel.
func New[T any]() (*Sender[T], *Receiver[T]) {
	c := &cell[T]{serial: nextSerial()}
	return &Sender[T]{c: c}, &Receiver[T]{c: c}
}

// Send delivers v to the receiver. Terminal: a Sender sends at most once,
// and a second Send panics. If the receiver departed before the handoff,
// Send returns ErrClosed and the caller keeps v — the channel never
// retains it. Never blocks.
func (tx *Sender[T]) Send(v T) error {
	return tx.c.send(v)
}

// Close marks the producer departed without sending, waking a waiting
// receiver so it observes the disconnect. After a completed Send it is a
// no-op: a committed value stays deliverable. Idempotent; always nil.
func (tx *Sender[T]) Close() error {
	tx.c.closeSend()
	return nil
}

// Serial returns the serial number assigned to this channel.
func (tx *Sender[T]) Serial() Serial {
	return tx.c.serial
}

// Recv blocks the calling goroutine until the sender delivers a value or
// departs. Terminal: after Recv returns the channel is spent and every
// later receive reports ErrClosed.
func (rx *Receiver[T]) Recv() (T, error) {
	return rx.c.recv()
}

// RecvTimeout is Recv bounded by a maximum wait duration.
// On ErrTimeout the registration is retracted and the channel stays open:
// the receive may be retried. A send racing exactly at the deadline is
// delivered rather than timed out.
func (rx *Receiver[T]) RecvTimeout(d time.Duration) (T, error) {
	return rx.c.recvDeadline(time.Now().Add(d))
}

// RecvDeadline is Recv bounded by an absolute deadline.
// Same timeout semantics as RecvTimeout.
func (rx *Receiver[T]) RecvDeadline(deadline time.Time) (T, error) {
	return rx.c.recvDeadline(deadline)
}

// TryRecv polls for the value without blocking: wait-free, no allocation,
// a bounded number of atomic steps. Returns iox.ErrWouldBlock while the
// sender has not acted, leaving any suspension registration untouched.
func (rx *Receiver[T]) TryRecv() (T, error) {
	return rx.c.tryRecv()
}

// Poll is the cooperative-suspension receive. It returns the value, or
// ErrClosed, or iox.ErrWouldBlock after storing wake as the channel's
// waiter. Registration is last-write-wins: polling again with a different
// callback guarantees the earlier one is never invoked. wake is invoked at
// most once per registration, only after the publishing transition is
// visible, and possibly spuriously late — it must remain safe to call
// after the receive completed.
func (rx *Receiver[T]) Poll(wake func()) (T, error) {
	return rx.c.poll(wake)
}

// Close marks the consumer departed, retracting any registration and
// destroying a delivered-but-unread payload. A sender observing the
// disconnect gets ErrClosed from Send. Idempotent; always nil.
func (rx *Receiver[T]) Close() error {
	rx.c.closeRecv()
	return nil
}

// Serial returns the serial number assigned to this channel.
func (rx *Receiver[T]) Serial() Serial {
	return rx.c.serial
}
