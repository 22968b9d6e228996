// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import "testing"

func TestEvalMstoreThenMload(t *testing.T) {
	m := newTestMachine()
	// MSTORE pops off (top) then val: push val first, off second.
	pushAll(t, m, 42, 0)
	c := evalMstore(m)
	if c.kind != controlContinue {
		t.Fatalf("unexpected control: %+v", c)
	}
	pushAll(t, m, 0) // MLOAD offset
	evalMload(m)
	if got := popResult(t, m); got != 42 {
		t.Errorf("MLOAD after MSTORE = %d, want 42", got)
	}
}

func TestEvalMstore8WritesLowByteOnly(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 0x1234, 0) // val=0x1234, off=0
	evalMstore8(m)
	got := m.memory.Get(0, 1)
	if got[0] != 0x34 {
		t.Errorf("MSTORE8 wrote %#x, want 0x34 (low byte only)", got[0])
	}
}

func TestEvalMloadBeyondHighWaterMarkReadsZero(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 1000)
	evalMload(m)
	if got := popResult(t, m); got != 0 {
		t.Errorf("MLOAD of untouched memory = %d, want 0", got)
	}
}

func TestEvalMcopy(t *testing.T) {
	m := newTestMachine()
	if err := m.memory.ResizeOffset(0, 32); err != nil {
		t.Fatal(err)
	}
	if err := m.memory.Set(0, []byte{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	// MCOPY pops dst (top) then src then size (bottom): push size, src, dst.
	pushAll(t, m, 4, 0, 32)
	c := evalMcopy(m)
	if c.kind != controlContinue {
		t.Fatalf("unexpected control: %+v", c)
	}
	got := m.memory.Get(32, 4)
	for i, b := range []byte{1, 2, 3, 4} {
		if got[i] != b {
			t.Errorf("MCOPY byte %d = %d, want %d", i, got[i], b)
		}
	}
}

func TestEvalMcopyZeroSizeIsNoOp(t *testing.T) {
	m := newTestMachine()
	pushAll(t, m, 0, 5, 10) // size=0, src=5, dst=10
	c := evalMcopy(m)
	if c.kind != controlContinue || m.memory.Len() != 0 {
		t.Errorf("zero-size MCOPY should not touch memory, got len=%d", m.memory.Len())
	}
}

func TestEvalCodesize(t *testing.T) {
	code := []byte{byte(STOP), byte(STOP), byte(STOP)}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	evalCodesize(m)
	if got := popResult(t, m); got != 3 {
		t.Errorf("CODESIZE = %d, want 3", got)
	}
}

func TestEvalCalldatasize(t *testing.T) {
	m := New(nil, nil, []byte{1, 2, 3, 4, 5}, defaultStackLimit, 1024*1024)
	evalCalldatasize(m)
	if got := popResult(t, m); got != 5 {
		t.Errorf("CALLDATASIZE = %d, want 5", got)
	}
}

func TestEvalCalldataloadPadsPastEnd(t *testing.T) {
	m := New(nil, nil, []byte{0xaa, 0xbb}, defaultStackLimit, 1024*1024)
	pushAll(t, m, 0)
	evalCalldataload(m)
	got, err := m.stack.Pop()
	if err != nil {
		t.Fatal(err)
	}
	b := got.Bytes32()
	if b[0] != 0xaa || b[1] != 0xbb || b[2] != 0x00 {
		t.Errorf("CALLDATALOAD should zero-pad past calldata end, got %x", b)
	}
}

func TestEvalCalldataloadOffsetOverflowReadsZero(t *testing.T) {
	m := New(nil, nil, []byte{1, 2, 3}, defaultStackLimit, 1024*1024)
	huge := Not(ZeroW256()) // far beyond uint64 range when offset is this large... actually fits in W256
	if err := m.stack.Push(huge); err != nil {
		t.Fatal(err)
	}
	evalCalldataload(m)
	got, err := m.stack.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsZero() {
		t.Errorf("CALLDATALOAD with unrepresentable offset should read all zero, got %v", got)
	}
}

func TestEvalCodecopy(t *testing.T) {
	code := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	// evalCopyFromBuffer pops dest (top), off, then len (bottom).
	pushAll(t, m, 2, 1, 0) // len=2, off=1, dest=0
	evalCodecopy(m)
	got := m.memory.Get(0, 2)
	if got[0] != 0xbb || got[1] != 0xcc {
		t.Errorf("CODECOPY copied %x, want bb cc", got)
	}
}

func TestEvalCalldatacopyZeroFillsPastBufferEnd(t *testing.T) {
	m := New(nil, nil, []byte{0x11, 0x22}, defaultStackLimit, 1024*1024)
	pushAll(t, m, 4, 0, 0) // len=4, off=0, dest=0
	evalCalldatacopy(m)
	got := m.memory.Get(0, 4)
	want := []byte{0x11, 0x22, 0x00, 0x00}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CALLDATACOPY byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}
