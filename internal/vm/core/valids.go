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

// Valids is a packed bitmap of JUMPDEST validity over a code buffer. Bit i
// of byte j (little-endian within the byte) encodes whether code position
// 8*j+i is a valid jump destination: a 0x5B byte that is not itself inside
// the immediate-data tail of a preceding PUSH1..PUSH32.
type Valids []byte

// SizeNeeded returns the number of bytes required to hold a bitmap covering
// codeLen positions.
func SizeNeeded(codeLen int) int {
	return (codeLen + 7) >> 3
}

// ComputeValids walks code left to right in a single pass, marking each
// 0x5B (JUMPDEST) byte valid unless it falls inside the immediate operand
// of a preceding PUSHn.
func ComputeValids(code []byte) Valids {
	v := make(Valids, SizeNeeded(len(code)))
	for i := 0; i < len(code); i++ {
		op := OpCode(code[i])
		if op == JUMPDEST {
			v[i/8] |= 1 << uint(i%8)
			continue
		}
		if n, ok := op.IsPush(); ok {
			i += n
		}
	}
	return v
}

// IsValid reports whether position is a valid JUMPDEST, per the bitmap.
func (v Valids) IsValid(position uint64) bool {
	idx := position / 8
	if idx >= uint64(len(v)) {
		return false
	}
	bit := position % 8
	return v[idx]&(1<<bit) != 0
}
