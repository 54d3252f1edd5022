// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"code.hybscloud.com/kont"
)

// AwaitBind receives the channel value and passes the outcome to f.
// Fuses Perform(Await[T]{Rx: rx}) + Bind.
func AwaitBind[T, B any](rx *Receiver[T], f func(kont.Either[error, T]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await[T]{Rx: rx}), f)
}

// AwaitValue receives the channel value as a Cont-world computation:
// Right(value) on delivery, Left(ErrClosed) on disconnect.
func AwaitValue[T any](rx *Receiver[T]) kont.Eff[kont.Either[error, T]] {
	return kont.Perform(Await[T]{Rx: rx})
}
