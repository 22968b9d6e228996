// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import "testing"

func TestEvalComparisons(t *testing.T) {
	cases := []struct {
		name string
		fn   func(*Machine) control
		a, b uint64
		want uint64
	}{
		{"LT true", evalLt, 1, 2, 1},
		{"LT false", evalLt, 2, 1, 0},
		{"GT true", evalGt, 2, 1, 1},
		{"EQ true", evalEq, 5, 5, 1},
		{"EQ false", evalEq, 5, 6, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			// evalBinaryArith pops a (top) then b (second); push b first so
			// a ends up on top, matching the fn(a,b) naming in tt.name.
			pushAll(t, m, tt.b, tt.a)
			tt.fn(m)
			if got := popResult(t, m); got != tt.want {
				t.Errorf("%s(%d,%d) = %d, want %d", tt.name, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEvalSltSgtSignAware(t *testing.T) {
	m := newTestMachine()
	minusOne := Not(ZeroW256()) // -1
	one := NewW256FromUint64(1)
	// evalBinaryArith pops a (top) then b (second); push one first so
	// minusOne ends up on top as a.
	if err := m.stack.Push(one); err != nil {
		t.Fatal(err)
	}
	if err := m.stack.Push(minusOne); err != nil {
		t.Fatal(err)
	}
	evalSlt(m) // SLT(-1, 1): -1 < 1 signed -> true
	if got := popResult(t, m); got != 1 {
		t.Errorf("SLT(-1,1) = %d, want 1", got)
	}
}

func TestEvalIszero(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 0)
	evalIszero(m)
	if got := popResult(t, m); got != 1 {
		t.Errorf("ISZERO(0) = %d, want 1", got)
	}

	m2 := newTestMachine()
	pushAll(t, m2, 7)
	evalIszero(m2)
	if got := popResult(t, m2); got != 0 {
		t.Errorf("ISZERO(7) = %d, want 0", got)
	}
}

func TestEvalAndOrXor(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 0b1100, 0b1010)
	evalAnd(m)
	if got := popResult(t, m); got != 0b1000 {
		t.Errorf("AND = %d, want %d", got, 0b1000)
	}

	m2 := newTestMachine()
	pushAll(t, m2, 0b1100, 0b1010)
	evalOr(m2)
	if got := popResult(t, m2); got != 0b1110 {
		t.Errorf("OR = %d, want %d", got, 0b1110)
	}

	m3 := newTestMachine()
	pushAll(t, m3, 0b1100, 0b1010)
	evalXor(m3)
	if got := popResult(t, m3); got != 0b0110 {
		t.Errorf("XOR = %d, want %d", got, 0b0110)
	}
}

func TestEvalNot(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 0)
	evalNot(m)
	got, err := m.stack.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Eq(Not(ZeroW256())) {
		t.Errorf("NOT(0) should be all-ones, got %v", got)
	}
}

func TestEvalByte(t *testing.T) {
	m := newTestMachine()
	x := NewW256FromUint64(0x0102)
	// evalBinaryArith pops a (top) then b (second); evalByte binds a=i,
	// b=x, so push x first and i on top.
	if err := m.stack.Push(x); err != nil { // x
		t.Fatal(err)
	}
	if err := m.stack.Push(NewW256FromUint64(31)); err != nil { // i
		t.Fatal(err)
	}
	evalByte(m)
	if got := popResult(t, m); got != 0x02 {
		t.Errorf("BYTE(31, 0x0102) = %d, want 2", got)
	}
}

func TestEvalShlShr(t *testing.T) {
	m := newTestMachine()
	// evalBinaryArith pops a (top) then b (second); evalShl binds a=shift,
	// b=value, so push value first and shift on top.
	pushAll(t, m, 1, 4) // shift=4, value=1 -> 1<<4 = 16
	evalShl(m)
	if got := popResult(t, m); got != 16 {
		t.Errorf("SHL(4,1) = %d, want 16", got)
	}

	m2 := newTestMachine()
	pushAll(t, m2, 16, 4) // shift=4, value=16 -> 16>>4 = 1
	evalShr(m2)
	if got := popResult(t, m2); got != 1 {
		t.Errorf("SHR(4,16) = %d, want 1", got)
	}
}

func TestEvalSarPositive(t *testing.T) {
	m := newTestMachine()
	// push value first, shift second (top) -> evalSar pops shift then value
	if err := m.stack.Push(NewW256FromUint64(16)); err != nil {
		t.Fatal(err)
	}
	if err := m.stack.Push(NewW256FromUint64(4)); err != nil {
		t.Fatal(err)
	}
	evalSar(m)
	if got := popResult(t, m); got != 1 {
		t.Errorf("SAR(4,16) = %d, want 1", got)
	}
}

func TestEvalSarNegativeRoundsTowardNegativeInfinity(t *testing.T) {
	m := newTestMachine()
	minusOne := Not(ZeroW256()) // -1, all bits set
	if err := m.stack.Push(minusOne); err != nil {
		t.Fatal(err)
	}
	if err := m.stack.Push(NewW256FromUint64(1)); err != nil { // shift=1
		t.Fatal(err)
	}
	evalSar(m)
	got, err := m.stack.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Eq(minusOne) {
		t.Errorf("SAR(1,-1) should stay -1, got %v", got)
	}
}

func TestEvalSarShiftOverflowNegative(t *testing.T) {
	m := newTestMachine()
	minusOne := Not(ZeroW256())
	if err := m.stack.Push(minusOne); err != nil {
		t.Fatal(err)
	}
	if err := m.stack.Push(NewW256FromUint64(300)); err != nil { // shift >= 256
		t.Fatal(err)
	}
	evalSar(m)
	got, err := m.stack.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Eq(minusOne) {
		t.Errorf("SAR of a negative value by >=256 should be -1, got %v", got)
	}
}

func TestEvalSarShiftOverflowPositive(t *testing.T) {
	m := newTestMachine()
	if err := m.stack.Push(NewW256FromUint64(42)); err != nil {
		t.Fatal(err)
	}
	if err := m.stack.Push(NewW256FromUint64(300)); err != nil {
		t.Fatal(err)
	}
	evalSar(m)
	if got := popResult(t, m); got != 0 {
		t.Errorf("SAR of a non-negative value by >=256 should be 0, got %d", got)
	}
}
