// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import "testing"

func TestAddW512NoOverflow(t *testing.T) {
	max := Not(ZeroW256()) // 2^256 - 1
	one := NewW256FromUint64(1)
	sum := AddW512(WidenW256(max), WidenW256(one))
	if _, ok := sum.NarrowW256(); ok {
		t.Error("(2^256-1)+1 should overflow 256 bits, not narrow cleanly")
	}
}

func TestMulModW512(t *testing.T) {
	max := Not(ZeroW256())
	mod := NewW256FromUint64(7)
	product := MulW512(WidenW256(max), WidenW256(max))
	reduced := ModW512(product, WidenW256(mod))
	got, ok := reduced.NarrowW256()
	if !ok {
		t.Fatal("reduced value must fit back into 256 bits")
	}
	if got.Cmp(mod) >= 0 {
		t.Errorf("result %v should be < modulus %v", got, mod)
	}
}

func TestModW512ByZeroIsZero(t *testing.T) {
	a := WidenW256(NewW256FromUint64(10))
	z := WidenW256(ZeroW256())
	got, ok := ModW512(a, z).NarrowW256()
	if !ok || !got.IsZero() {
		t.Errorf("mod by zero should narrow to zero, got %v, ok=%v", got, ok)
	}
}
