// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import "testing"

func TestW256B256RoundTrip(t *testing.T) {
	for _, v := range []W256{
		ZeroW256(),
		NewW256FromUint64(42),
		Not(ZeroW256()),
	} {
		h := W256ToB256(v)
		got := B256ToW256(h)
		if !got.Eq(v) {
			t.Errorf("round-trip mismatch: B256ToW256(W256ToB256(%v)) = %v", v, got)
		}
	}
}

func TestW256ToB256IsBigEndian(t *testing.T) {
	v := NewW256FromUint64(0x0102)
	h := W256ToB256(v)
	if h[30] != 0x01 || h[31] != 0x02 {
		t.Errorf("expected big-endian layout, got %x", h)
	}
}
