// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrClosed reports that the counterpart handle departed before the
	// handoff completed, or that the single value has already been taken.
	// Terminal: the channel can never deliver after ErrClosed.
	ErrClosed = errors.New("oneshot: counterpart gone or value already taken")

	// ErrTimeout reports that a bounded receive elapsed before the sender
	// acted. Non-terminal for the channel: the registration is retracted
	// and a later receive may still succeed.
	ErrTimeout = errors.New("oneshot: receive timed out")
)

// IsWouldBlock reports whether err is the "no value yet" failure returned
// by TryRecv and Poll. Delegates to iox for ecosystem consistency.
func IsWouldBlock(err error) bool {
	return errors.Is(err, iox.ErrWouldBlock)
}

// IsClosed reports whether err is the terminal counterpart-gone failure.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsTimeout reports whether err is the bounded-receive timeout failure.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
