// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import "testing"

func newTestMachine() *Machine {
	return New(nil, nil, nil, defaultStackLimit, 1024*1024)
}

func pushAll(t *testing.T, m *Machine, vals ...uint64) {
	t.Helper()
	for _, v := range vals {
		if err := m.stack.Push(NewW256FromUint64(v)); err != nil {
			t.Fatalf("push %d failed: %v", v, err)
		}
	}
}

func popResult(t *testing.T, m *Machine) uint64 {
	t.Helper()
	v, err := m.stack.Pop()
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	return v.Uint256().Uint64()
}

func TestEvalAdd(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 4, 3) // evalBinaryArith pops a=3 (top) then b=4
	c := evalAdd(m)
	if c.kind != controlContinue || c.delta != 1 {
		t.Fatalf("unexpected control: %+v", c)
	}
	if got := popResult(t, m); got != 7 {
		t.Errorf("3+4 = %d, want 7", got)
	}
}

func TestEvalSub(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 4, 10) // a=10 pushed second (top), b=4 pushed first -> Sub(a,b)=10-4
	evalSub(m)
	if got := popResult(t, m); got != 6 {
		t.Errorf("10-4 = %d, want 6", got)
	}
}

func TestEvalAddmod(t *testing.T) {
	m := newTestMachine()
	// ADDMOD pops op1 (top/last-pushed), op2, then op3 (bottom/first-pushed,
	// the modulus). Push the modulus first so it ends up as op3.
	pushAll(t, m, 8, 7, 10) // mod=8, op1=10, op2=7 -> (10+7) % 8 = 1
	c := evalAddmod(m)
	if c.kind != controlContinue {
		t.Fatalf("unexpected control: %+v", c)
	}
	if got := popResult(t, m); got != 1 {
		t.Errorf("(10+7)%%8 = %d, want 1", got)
	}
}

func TestEvalAddmodByZeroModulusIsZero(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 0, 10, 7) // mod=0
	evalAddmod(m)
	if got := popResult(t, m); got != 0 {
		t.Errorf("mod by zero should be zero, got %d", got)
	}
}

func TestEvalMulmodOverflowsPast256Bits(t *testing.T) {
	m := newTestMachine()
	max := Not(ZeroW256())
	mod := NewW256FromUint64(1000)
	_ = m.stack.Push(mod)
	_ = m.stack.Push(max)
	_ = m.stack.Push(max)
	evalMulmod(m)
	got, err := m.stack.Pop()
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if got.Cmp(mod) >= 0 {
		t.Errorf("MULMOD result %v must be < modulus %v", got, mod)
	}
}

func TestEvalSignextendNoOp(t *testing.T) {
	m := newTestMachine()
	// SIGNEXTEND pops k then x; k >= 31 is identity.
	pushAll(t, m, 0x7f, 31) // x=0x7f, k=31
	evalSignextend(m)
	if got := popResult(t, m); got != 0x7f {
		t.Errorf("k>=31 should be identity, got %d", got)
	}
}

func TestEvalSignextendNegative(t *testing.T) {
	m := newTestMachine()
	// x = 0xff (byte 0, k=0): sign bit of byte 0 is set -> sign-extend to -1.
	pushAll(t, m, 0xff, 0)
	evalSignextend(m)
	got, err := m.stack.Pop()
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if !got.Eq(Not(ZeroW256())) {
		t.Errorf("expected -1 (all ones), got %v", got)
	}
}

func TestEvalExp(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 2, 3) // a=3 (base, top), b=2 (exponent, second) -> Exp(3,2)
	evalExp(m)
	if got := popResult(t, m); got != 9 {
		t.Errorf("3**2 = %d, want 9", got)
	}
}

func TestEvalArithStackUnderflowExits(t *testing.T) {
	m := newTestMachine()
	c := evalAdd(m)
	if c.kind != controlExit {
		t.Fatalf("expected controlExit on underflow, got %+v", c)
	}
	if c.exit.Kind != ExitKindError || c.exit.Err.Kind != ErrStackUnderflow {
		t.Errorf("expected ErrStackUnderflow, got %+v", c.exit)
	}
}
