// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package core

func evalPop(m *Machine) control {
	if _, err := m.stack.Pop(); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalPc(m *Machine) control {
	if err := m.stack.Push(NewW256FromUint64(m.position)); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalMsize(m *Machine) control {
	if err := m.stack.Push(NewW256FromUint64(m.memory.Len())); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalPush0(m *Machine) control {
	if err := m.stack.Push(ZeroW256()); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

// evalPush reads n immediate bytes following the opcode at m.position and
// pushes them left-padded to 32 bytes. Reading past the end of code is not
// an error: the missing bytes are treated as zero, matching the EVM
// convention that PUSH at the tail of code is implicitly zero-padded.
func evalPush(m *Machine, n int) control {
	start := m.position + 1
	data := readZeroPadded(m.code, start, uint64(n))
	var v W256
	padded := make([]byte, 32)
	copy(padded[32-n:], data)
	v.SetBytes32(padded)
	if err := m.stack.Push(v); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(uint64(1 + n))
}

func evalDup(m *Machine, n int) control {
	if err := m.stack.Dup(n); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalSwap(m *Machine, n int) control {
	if err := m.stack.Swap(n); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

// evalJump pops the destination and jumps to it if, and only if, it lands on
// a JUMPDEST not embedded in PUSH data.
func evalJump(m *Machine) control {
	destW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	dest, jerr := jumpDestToUint64(destW)
	if jerr != nil {
		return controlExitWith(ExitWithError(jerr))
	}
	if !m.valids.IsValid(dest) {
		return controlExitWith(ExitWithError(NewExitError(ErrInvalidJump)))
	}
	return controlJumpTo(dest)
}

func evalJumpi(m *Machine) control {
	destW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	cond, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	if cond.IsZero() {
		return controlContinueBy(1)
	}
	dest, jerr := jumpDestToUint64(destW)
	if jerr != nil {
		return controlExitWith(ExitWithError(jerr))
	}
	if !m.valids.IsValid(dest) {
		return controlExitWith(ExitWithError(NewExitError(ErrInvalidJump)))
	}
	return controlJumpTo(dest)
}

func evalJumpdest(m *Machine) control { return controlContinueBy(1) }

func evalStop(m *Machine) control { return controlExitWith(ExitSucceeded(Stopped)) }

func evalReturn(m *Machine) control {
	off, size, err := popRange(m)
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	m.returnRange = [2]uint64{off, size}
	return controlExitWith(ExitSucceeded(Returned))
}

func evalRevert(m *Machine) control {
	off, size, err := popRange(m)
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	m.returnRange = [2]uint64{off, size}
	return controlExitWith(ExitReverted())
}

func popRange(m *Machine) (uint64, uint64, *ExitError) {
	offW, err := m.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	sizeW, err := m.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	off, oerr := offsetToUint64(offW)
	if oerr != nil {
		return 0, 0, oerr
	}
	size, oerr := offsetToUint64(sizeW)
	if oerr != nil {
		return 0, 0, oerr
	}
	if size > 0 {
		if rerr := m.memory.ResizeOffset(off, size); rerr != nil {
			return 0, 0, rerr
		}
	}
	return off, size, nil
}

func evalInvalid(m *Machine) control {
	return controlExitWith(ExitErrored(ErrDesignatedInvalid))
}
