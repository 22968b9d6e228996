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

import "math/big"

// W512 is an unsigned 512-bit integer used as the widening intermediate for
// ADDMOD and MULMOD, where a naive 256-bit computation of x+y or x*y can
// overflow before the modulus is applied. No third-party 512-bit integer
// type is available anywhere in this module's dependency graph, so this is
// a thin wrapper around math/big, scoped to exactly the two operations that
// need it.
type W512 struct {
	i big.Int
}

// WidenW256 embeds a W256 into a W512.
func WidenW256(x W256) W512 {
	var w W512
	b := x.Bytes32()
	w.i.SetBytes(b[:])
	return w
}

// NarrowW256 narrows a W512 back to a W256, reporting false (Overflow) if
// the value does not fit in 256 bits.
func (w W512) NarrowW256() (W256, bool) {
	if w.i.BitLen() > 256 {
		return ZeroW256(), false
	}
	var r W256
	buf := make([]byte, 32)
	w.i.FillBytes(buf)
	r.SetBytes32(buf)
	return r, true
}

// AddW512 returns a + b with no truncation.
func AddW512(a, b W512) W512 {
	var r W512
	r.i.Add(&a.i, &b.i)
	return r
}

// MulW512 returns a * b with no truncation.
func MulW512(a, b W512) W512 {
	var r W512
	r.i.Mul(&a.i, &b.i)
	return r
}

// ModW512 returns a % m; m == 0 yields zero, matching the EVM's modular
// reduction convention.
func ModW512(a, m W512) W512 {
	var r W512
	if m.i.Sign() == 0 {
		return r
	}
	r.i.Mod(&a.i, &m.i)
	return r
}
