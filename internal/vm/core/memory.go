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

import "math"

// Memory is a linearly-addressed, zero-initialized byte tape. The backing
// store only ever grows, and only to 32-byte-aligned boundaries; every
// access that might observe bytes beyond the current high-water mark must
// go through ResizeOffset first.
type Memory struct {
	store []byte
	limit uint64
}

// NewMemory returns an empty Memory bounded to limit bytes of effective
// length.
func NewMemory(limit uint64) *Memory {
	return &Memory{limit: limit}
}

// Len returns the effective length (high-water mark), always a multiple of
// 32.
func (m *Memory) Len() uint64 { return uint64(len(m.store)) }

func ceil32(x uint64) (uint64, bool) {
	if x > math.MaxUint64-31 {
		return 0, false
	}
	return (x + 31) &^ 31, true
}

// ResizeOffset grows the buffer so that [offset, offset+size) is addressable,
// rounding the new effective length up to the next multiple of 32. A
// zero-size request is always a no-op. Fails InvalidRange on usize overflow
// or if the required length would exceed the configured memory_limit.
func (m *Memory) ResizeOffset(offset, size uint64) *ExitError {
	if size == 0 {
		return nil
	}
	end := offset + size
	if end < offset {
		return NewExitError(ErrInvalidRange)
	}
	newLen, ok := ceil32(end)
	if !ok {
		return NewExitError(ErrInvalidRange)
	}
	if newLen > m.limit {
		return NewExitError(ErrInvalidRange)
	}
	if newLen <= uint64(len(m.store)) {
		return nil
	}
	grown, ok := SafeUint64ToInt(newLen)
	if !ok {
		return NewExitError(ErrInvalidRange)
	}
	buf := GetMemory(grown)
	copy(buf, m.store)
	for i := len(m.store); i < len(buf); i++ {
		buf[i] = 0
	}
	if m.store != nil {
		PutMemory(m.store)
	}
	m.store = buf
	return nil
}

// Get returns exactly size bytes starting at offset. Bytes at or beyond the
// current effective length read as zero; this never fails, but callers
// needing the bytes to actually be within bounds must ResizeOffset first.
func (m *Memory) Get(offset, size uint64) []byte {
	buf := make([]byte, size)
	if offset >= uint64(len(m.store)) {
		return buf
	}
	avail := uint64(len(m.store)) - offset
	n := size
	if avail < n {
		n = avail
	}
	copy(buf, m.store[offset:offset+n])
	return buf
}

// GetCopy is an alias for Get, matching the naming convention of a
// copy-returning accessor used elsewhere in this module's ancestry.
func (m *Memory) GetCopy(offset, size uint64) []byte { return m.Get(offset, size) }

// Set writes data starting at offset. The caller must have already resized
// memory to cover [offset, offset+len(data)). Fails InvalidRange on usize
// overflow or if the write would fall outside the current buffer.
func (m *Memory) Set(offset uint64, data []byte) *ExitError {
	if len(data) == 0 {
		return nil
	}
	end := offset + uint64(len(data))
	if end < offset || end > uint64(len(m.store)) {
		return NewExitError(ErrInvalidRange)
	}
	copy(m.store[offset:end], data)
	return nil
}

// CopyLarge writes size bytes at dstOffset, sourced from source[srcOffset:],
// zero-filling any tail past len(source). The source is fully materialized
// into a temporary buffer before memory is mutated, which is what makes
// this safe to call with source aliasing m's own backing store (MCOPY).
func (m *Memory) CopyLarge(dstOffset, srcOffset, size uint64, source []byte) *ExitError {
	if size == 0 {
		return nil
	}
	end := dstOffset + size
	if end < dstOffset || end > uint64(len(m.store)) {
		return NewExitError(ErrInvalidRange)
	}
	tmp := make([]byte, size)
	if srcOffset < uint64(len(source)) {
		avail := uint64(len(source)) - srcOffset
		n := size
		if avail < n {
			n = avail
		}
		copy(tmp[:n], source[srcOffset:srcOffset+n])
	}
	copy(m.store[dstOffset:end], tmp)
	return nil
}
