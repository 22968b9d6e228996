// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package core

import "testing"

func TestMachineRunStopsOnExplicitStop(t *testing.T) {
	code := []byte{byte(PUSH1), 0x01, byte(PUSH1), 0x02, byte(ADD), byte(STOP)}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	capt := m.Run(0, nil, Context{})
	if !capt.IsExit() || !capt.Exit.IsSucceed() || capt.Exit.Succeed != Stopped {
		t.Fatalf("expected Stopped, got %+v", capt)
	}
}

func TestMachineRunFallsOffEndOfCodeAsStop(t *testing.T) {
	code := []byte{byte(PUSH1), 0x01}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	capt := m.Run(0, nil, Context{})
	if !capt.IsExit() || capt.Exit.Succeed != Stopped {
		t.Fatalf("expected implicit Stopped, got %+v", capt)
	}
}

func TestMachineRunReturnsData(t *testing.T) {
	// PUSH1 0x2a, PUSH1 0x00, MSTORE, PUSH1 0x20, PUSH1 0x00, RETURN
	code := []byte{
		byte(PUSH1), 0x2a,
		byte(PUSH1), 0x00,
		byte(MSTORE),
		byte(PUSH1), 0x20,
		byte(PUSH1), 0x00,
		byte(RETURN),
	}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	capt := m.Run(0, nil, Context{})
	if !capt.IsExit() || capt.Exit.Succeed != Returned {
		t.Fatalf("expected Returned, got %+v", capt)
	}
	ret := m.ReturnValue()
	if len(ret) != 32 || ret[31] != 0x2a {
		t.Errorf("return value = %x, want 32 bytes ending in 0x2a", ret)
	}
}

func TestMachineRunTrapsOnUnimplementedOpcodeThenResumes(t *testing.T) {
	// BALANCE traps; after the host resolves it and calls Advance(1), the
	// machine should continue on to STOP.
	code := []byte{byte(PUSH1), 0x00, byte(BALANCE), byte(STOP)}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)

	capt := m.Run(0, nil, Context{})
	if !capt.IsTrap || capt.Trap != BALANCE {
		t.Fatalf("expected trap on BALANCE, got %+v", capt)
	}
	if pos := m.Position(); pos != 2 {
		t.Fatalf("expected PC at the BALANCE opcode (2), got %d", pos)
	}

	// Host resolves the query and pushes a result before resuming.
	if err := m.stack.Push(ZeroW256()); err != nil {
		t.Fatal(err)
	}
	m.Advance(1)

	capt = m.Run(0, nil, Context{})
	if !capt.IsExit() || capt.Exit.Succeed != Stopped {
		t.Fatalf("expected Stopped after resume, got %+v", capt)
	}
}

func TestMachineRunStepLimitReached(t *testing.T) {
	code := []byte{byte(JUMPDEST), byte(PUSH1), 0x00, byte(JUMP)} // infinite loop back to 0
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	capt := m.Run(5, nil, Context{})
	if !capt.IsExit() || capt.Exit.Kind != ExitKindStepLimitReached {
		t.Fatalf("expected step limit reached, got %+v", capt)
	}
}

func TestMachineRunAfterExitReturnsCachedCapture(t *testing.T) {
	code := []byte{byte(STOP)}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	first := m.Run(0, nil, Context{})
	second := m.Run(0, nil, Context{})
	if second.Exit != first.Exit {
		t.Errorf("re-running an exited machine should return the same exit, got %+v vs %+v", first, second)
	}
}

func TestMachineReturnValueIsNilWithoutReturn(t *testing.T) {
	code := []byte{byte(STOP)}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	m.Run(0, nil, Context{})
	if got := m.ReturnValue(); got != nil {
		t.Errorf("expected nil return value after STOP, got %v", got)
	}
}

func TestMachineInspect(t *testing.T) {
	code := []byte{byte(ADD)}
	m := New(code, nil, nil, defaultStackLimit, 1024*1024)
	op, ok := m.Inspect()
	if !ok || op != ADD {
		t.Fatalf("expected ADD at position 0, got %v, %v", op, ok)
	}
	m.Advance(1)
	if _, ok := m.Inspect(); ok {
		t.Error("Inspect past end of code should report false")
	}
}
