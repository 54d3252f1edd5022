// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oneshot_test

import (
	"fmt"
	"testing"
	"time"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/oneshot"
)

func TestStepInspectOperation(t *testing.T) {
	tx, rx := oneshot.New[int]()

	protocol := oneshot.ExprAwaitValue(rx)
	_, susp := oneshot.Step(protocol)
	if susp == nil {
		t.Fatal("expected suspension for Await")
	}
	op, ok := susp.Op().(oneshot.Await[int])
	if !ok {
		t.Fatalf("expected Await[int], got %T", susp.Op())
	}
	if op.Rx != rx {
		t.Fatal("Await carries the wrong receiver")
	}

	// Nothing sent yet: Advance leaves the suspension unconsumed.
	_, susp2, err := oneshot.Advance(susp)
	if !oneshot.IsWouldBlock(err) {
		t.Fatalf("Advance got %v, want ErrWouldBlock", err)
	}
	if susp2 != susp {
		t.Fatal("pending Advance must return the same suspension")
	}

	_ = tx.Send(9)
	result, susp3, err := oneshot.Advance(susp2)
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if susp3 != nil {
		t.Fatal("expected completion after delivery")
	}
	v, ok := result.GetRight()
	if !ok || v != 9 {
		t.Fatalf("result got %v, want Right(9)", result)
	}
}

func TestStepAwaitDisconnected(t *testing.T) {
	tx, rx := oneshot.New[int]()

	_, susp := oneshot.Step(oneshot.ExprAwaitValue(rx))
	_ = tx.Close()

	result, susp, err := oneshot.Advance(susp)
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if susp != nil {
		t.Fatal("expected completion on disconnect")
	}
	e, ok := result.GetLeft()
	if !ok || !oneshot.IsClosed(e) {
		t.Fatalf("result got %v, want Left(ErrClosed)", result)
	}
}

func TestStepAdvanceConcurrentSender(t *testing.T) {
	skipRace(t)
	tx, rx := oneshot.New[int]()

	go func() {
		time.Sleep(5 * time.Millisecond)
		_ = tx.Send(42)
	}()

	result := execExpr(oneshot.ExprAwaitBind(rx, func(e kont.Either[error, int]) kont.Expr[string] {
		if v, ok := e.GetRight(); ok {
			return kont.ExprReturn(fmt.Sprintf("got %d", v))
		}
		return kont.ExprReturn("gone")
	}))
	if result != "got 42" {
		t.Fatalf("protocol got %q, want %q", result, "got 42")
	}
}

func TestExecAwaitBind(t *testing.T) {
	tx, rx := oneshot.New[int]()

	_ = tx.Send(42)
	result := oneshot.Exec(oneshot.AwaitBind(rx, func(e kont.Either[error, int]) kont.Eff[string] {
		if v, ok := e.GetRight(); ok {
			return kont.Pure(fmt.Sprintf("got %d", v))
		}
		return kont.Pure("gone")
	}))
	if result != "got 42" {
		t.Fatalf("Exec got %q, want %q", result, "got 42")
	}
}

func TestExecDisconnected(t *testing.T) {
	tx, rx := oneshot.New[int]()

	_ = tx.Close()
	result := oneshot.Exec(oneshot.AwaitValue(rx))
	e, ok := result.GetLeft()
	if !ok || !oneshot.IsClosed(e) {
		t.Fatalf("Exec got %v, want Left(ErrClosed)", result)
	}
}

func TestExecBlocksUntilSend(t *testing.T) {
	skipRace(t)
	tx, rx := oneshot.New[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = tx.Send("late")
	}()

	result := oneshot.ExecExpr(oneshot.ExprAwaitValue(rx))
	v, ok := result.GetRight()
	if !ok || v != "late" {
		t.Fatalf("ExecExpr got %v, want Right(%q)", result, "late")
	}
}

func TestExecUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unhandled effect")
		}
		msg, ok := r.(string)
		if !ok || msg != "oneshot: unhandled effect in awaitHandler" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	oneshot.Exec(kont.Perform(bogus{}))
}
