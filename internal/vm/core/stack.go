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

import "sync"

const defaultStackLimit = 1024

var stackSlicePool = sync.Pool{
	New: func() interface{} {
		s := make([]W256, 0, defaultStackLimit)
		return &s
	},
}

// Stack is a bounded LIFO of W256 words.
type Stack struct {
	data  []W256
	limit int
}

// NewStack returns a Stack bounded to limit elements, reusing a pooled
// backing array when limit matches the common case.
func NewStack(limit int) *Stack {
	var data []W256
	if limit <= defaultStackLimit {
		p := stackSlicePool.Get().(*[]W256)
		data = (*p)[:0]
	} else {
		data = make([]W256, 0, limit)
	}
	return &Stack{data: data, limit: limit}
}

// ReturnStack releases s's backing array back to the pool. The Stack must
// not be used afterward.
func ReturnStack(s *Stack) {
	if s == nil || cap(s.data) != defaultStackLimit {
		return
	}
	s.data = s.data[:0]
	stackSlicePool.Put(&s.data)
}

// Len returns the number of elements currently on the stack.
func (s *Stack) Len() int { return len(s.data) }

// Cap returns the stack's configured capacity.
func (s *Stack) Cap() int { return s.limit }

// Reset empties the stack without releasing its backing array.
func (s *Stack) Reset() { s.data = s.data[:0] }

// Push appends v to the top of the stack, failing StackOverflow if the
// stack is already at its limit.
func (s *Stack) Push(v W256) *ExitError {
	if len(s.data) >= s.limit {
		return NewExitError(ErrStackOverflow)
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the top of the stack, failing StackUnderflow if
// the stack is empty.
func (s *Stack) Pop() (W256, *ExitError) {
	n := len(s.data)
	if n == 0 {
		return ZeroW256(), NewExitError(ErrStackUnderflow)
	}
	v := s.data[n-1]
	s.data = s.data[:n-1]
	return v, nil
}

// Peek returns the top of the stack without removing it.
func (s *Stack) Peek() (W256, *ExitError) {
	return s.Back(0)
}

// Back returns the element at depth n from the top (0 is the top), failing
// StackUnderflow if depth n does not exist.
func (s *Stack) Back(n int) (W256, *ExitError) {
	idx := len(s.data) - 1 - n
	if idx < 0 {
		return ZeroW256(), NewExitError(ErrStackUnderflow)
	}
	return s.data[idx], nil
}

// Dup copies the element at depth n-1 to the top of the stack, for n in
// [1,16].
func (s *Stack) Dup(n int) *ExitError {
	v, err := s.Back(n - 1)
	if err != nil {
		return err
	}
	return s.Push(v)
}

// Swap exchanges the top of the stack with the element at depth n, for n in
// [1,16].
func (s *Stack) Swap(n int) *ExitError {
	top := len(s.data) - 1
	other := top - n
	if top < 0 || other < 0 {
		return NewExitError(ErrStackUnderflow)
	}
	s.data[top], s.data[other] = s.data[other], s.data[top]
	return nil
}
