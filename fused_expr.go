// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func awaitBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(kont.Either[error, T]) kont.Expr[B])
	result := f(current.(kont.Either[error, T]))
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind receives the channel value and passes the outcome to f.
// Fuses ExprPerform(Await[T]{Rx: rx}) + ExprBind.
func ExprAwaitBind[T, B any](rx *Receiver[T], f func(kont.Either[error, T]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[T]{Rx: rx}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprAwaitValue receives the channel value as a suspended Expr.
// Fuses ExprPerform(Await[T]{Rx: rx}) alone.
func ExprAwaitValue[T any](rx *Receiver[T]) kont.Expr[kont.Either[error, T]] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[T]{Rx: rx}
	ef.Resume = identityResume
	ef.Next = kont.ReturnFrame{}
	return kont.ExprSuspend[kont.Either[error, T]](ef)
}
