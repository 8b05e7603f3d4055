package errors

import (
	"strings"
	"testing"
)

func TestRecoverConvertsPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "slice.Sample")
		panic("density callback exploded")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "slice.Sample" {
		t.Errorf("Operation = %v, want slice.Sample", panicErr.Operation)
	}
	if !strings.Contains(panicErr.StackTrace, "recovery_test.go") {
		t.Error("expected stack trace to contain test file name")
	}
}

func TestRecoverPreservesExistingError(t *testing.T) {
	sentinel := New("original failure")
	fn := func() (err error) {
		defer Recover(&err, "gibbs.Sample")
		err = sentinel
		panic("after error")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected combined error")
	}
	if !Is(err, sentinel) {
		t.Error("expected wrapped error to preserve the original error")
	}
	if !strings.Contains(err.Error(), "panic in gibbs.Sample") {
		t.Errorf("unexpected message: %v", err.Error())
	}
}

func TestSafeExecute(t *testing.T) {
	// 正常系はそのままエラーを返す
	if err := SafeExecute("noop", func() error { return nil }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := SafeExecute("conditional transition", func() error {
		var s []float64
		_ = s[3] // out-of-range panic
		return nil
	})
	if err == nil {
		t.Fatal("expected error from panicking callback")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
}
