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

func evalMload(m *Machine) control {
	offW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	off, oerr := offsetToUint64(offW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	if rerr := m.memory.ResizeOffset(off, 32); rerr != nil {
		return controlExitWith(ExitWithError(rerr))
	}
	var v W256
	v.SetBytes32(m.memory.Get(off, 32))
	if perr := m.stack.Push(v); perr != nil {
		return controlExitWith(ExitWithError(perr))
	}
	return controlContinueBy(1)
}

func evalMstore(m *Machine) control {
	offW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	val, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	off, oerr := offsetToUint64(offW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	if rerr := m.memory.ResizeOffset(off, 32); rerr != nil {
		return controlExitWith(ExitWithError(rerr))
	}
	b := val.Bytes32()
	if serr := m.memory.Set(off, b[:]); serr != nil {
		return controlExitWith(ExitWithError(serr))
	}
	return controlContinueBy(1)
}

func evalMstore8(m *Machine) control {
	offW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	val, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	off, oerr := offsetToUint64(offW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	if rerr := m.memory.ResizeOffset(off, 1); rerr != nil {
		return controlExitWith(ExitWithError(rerr))
	}
	b := val.Bytes32()
	if serr := m.memory.Set(off, b[31:32]); serr != nil {
		return controlExitWith(ExitWithError(serr))
	}
	return controlContinueBy(1)
}

// evalMcopy implements MCOPY: memory is resized to cover the larger of the
// source and destination ranges before the (overlap-safe) copy runs.
func evalMcopy(m *Machine) control {
	dstW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	srcW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	sizeW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	dst, oerr := offsetToUint64(dstW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	src, oerr := offsetToUint64(srcW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	size, oerr := offsetToUint64(sizeW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	if size == 0 {
		return controlContinueBy(1)
	}
	maxOff := dst
	if src > maxOff {
		maxOff = src
	}
	if rerr := m.memory.ResizeOffset(maxOff, size); rerr != nil {
		return controlExitWith(ExitWithError(rerr))
	}
	if cerr := m.memory.CopyLarge(dst, src, size, m.memory.store); cerr != nil {
		return controlExitWith(ExitWithError(cerr))
	}
	return controlContinueBy(1)
}

func evalCodesize(m *Machine) control {
	if err := m.stack.Push(NewW256FromUint64(uint64(len(m.code)))); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalCalldatasize(m *Machine) control {
	if err := m.stack.Push(NewW256FromUint64(uint64(len(m.data)))); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalCalldataload(m *Machine) control {
	offW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	off, ok := SafeUint256ToUint64(offW.Uint256())
	var window []byte
	if ok {
		window = readZeroPadded(m.data, off, 32)
	} else {
		window = make([]byte, 32)
	}
	var v W256
	v.SetBytes32(window)
	if perr := m.stack.Push(v); perr != nil {
		return controlExitWith(ExitWithError(perr))
	}
	return controlContinueBy(1)
}

// evalCopyFromBuffer implements both CODECOPY and CALLDATACOPY: resize
// memory to [destOffset, destOffset+len), then bounded-copy from source with
// a zero-filled tail for any part of the requested range past source's end.
func evalCopyFromBuffer(m *Machine, source []byte) control {
	destW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	offW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	lenW, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	dest, oerr := offsetToUint64(destW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	length, oerr := offsetToUint64(lenW)
	if oerr != nil {
		return controlExitWith(ExitWithError(oerr))
	}
	if length == 0 {
		return controlContinueBy(1)
	}
	srcOff, ok := SafeUint256ToUint64(offW.Uint256())
	if !ok {
		srcOff = uint64(len(source)) // forces the zero-fill path below
	}
	if rerr := m.memory.ResizeOffset(dest, length); rerr != nil {
		return controlExitWith(ExitWithError(rerr))
	}
	if cerr := m.memory.CopyLarge(dest, srcOff, length, source); cerr != nil {
		return controlExitWith(ExitWithError(cerr))
	}
	return controlContinueBy(1)
}

func evalCodecopy(m *Machine) control     { return evalCopyFromBuffer(m, m.code) }
func evalCalldatacopy(m *Machine) control { return evalCopyFromBuffer(m, m.data) }

func readZeroPadded(source []byte, offset, size uint64) []byte {
	buf := make([]byte, size)
	if offset >= uint64(len(source)) {
		return buf
	}
	avail := uint64(len(source)) - offset
	n := size
	if avail < n {
		n = avail
	}
	copy(buf, source[offset:offset+n])
	return buf
}
