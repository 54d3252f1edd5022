// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import "time"

// parker is the goroutine-parking capability used by the blocking receive
// paths: a single-slot token whose unpark is idempotent when the goroutine
// is already unparked. The buffered slot absorbs an unpark that arrives
// before the park, so registration and parking need not be atomic.
type parker chan struct{}

func newParker() parker {
	return make(parker, 1)
}

// unpark releases the parked goroutine. Safe to invoke at any time and any
// number of times; extra tokens are dropped.
func (p parker) unpark() {
	select {
	case p <- struct{}{}:
	default:
	}
}

// park blocks the calling goroutine until unpark.
func (p parker) park() {
	<-p
}

// parkDeadline blocks until unpark or until deadline. Reports whether the
// goroutine was unparked; false means the deadline elapsed first.
// An unpark token that raced in ahead of an already-expired deadline still
// counts as unparked, so a value landing exactly at the deadline is
// delivered rather than timed out.
func (p parker) parkDeadline(deadline time.Time) bool {
	d := time.Until(deadline)
	if d <= 0 {
		select {
		case <-p:
			return true
		default:
			return false
		}
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-p:
		return true
	case <-t.C:
		return false
	}
}
