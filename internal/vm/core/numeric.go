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

import (
	"github.com/holiman/uint256"
)

// W256 is an unsigned 256-bit integer, the native word size of the machine.
// It wraps uint256.Int, the 256-bit integer type used throughout the rest of
// this module's dependency graph.
type W256 struct {
	v uint256.Int
}

// ZeroW256 returns the additive identity.
func ZeroW256() W256 { return W256{} }

// NewW256FromUint64 constructs a W256 from a uint64.
func NewW256FromUint64(x uint64) W256 {
	var w W256
	w.v.SetUint64(x)
	return w
}

// W256FromBigEndian constructs a W256 by decoding a big-endian byte slice,
// left-padding (or truncating the low bytes in) as needed.
func W256FromBigEndian(b []byte) W256 {
	var w W256
	w.v.SetBytes(b)
	return w
}

// Uint256 exposes the underlying *uint256.Int for interop with libraries
// (go-ethereum, holiman/uint256 consumers) that speak that type directly.
func (w *W256) Uint256() *uint256.Int { return &w.v }

// SetUint256 sets w from a *uint256.Int, copying its value.
func (w *W256) SetUint256(v *uint256.Int) *W256 {
	w.v.Set(v)
	return w
}

// Bytes32 returns the canonical 32-byte big-endian encoding.
func (w W256) Bytes32() [32]byte {
	return w.v.Bytes32()
}

// SetBytes32 decodes a left-padded (or truncated) 32-byte big-endian buffer.
func (w *W256) SetBytes32(b []byte) *W256 {
	w.v.SetBytes32(b)
	return w
}

// SetBytes decodes a big-endian buffer of any length, left-padding as needed.
func (w *W256) SetBytes(b []byte) *W256 {
	w.v.SetBytes(b)
	return w
}

// IsZero reports whether w is the zero value.
func (w W256) IsZero() bool { return w.v.IsZero() }

// Eq reports whether w equals other.
func (w W256) Eq(other W256) bool { return w.v.Eq(&other.v) }

// Cmp returns -1, 0 or 1 comparing w to other as unsigned integers.
func (w W256) Cmp(other W256) int { return w.v.Cmp(&other.v) }

// Lt reports whether w < other (unsigned).
func (w W256) Lt(other W256) bool { return w.v.Lt(&other.v) }

// Gt reports whether w > other (unsigned).
func (w W256) Gt(other W256) bool { return w.v.Gt(&other.v) }

// Slt reports whether w < other interpreted as two's-complement signed.
func (w W256) Slt(other W256) bool { return w.v.Slt(&other.v) }

// Sgt reports whether w > other interpreted as two's-complement signed.
func (w W256) Sgt(other W256) bool { return w.v.Sgt(&other.v) }

// Add returns a wrapping (mod 2^256) sum.
func Add(a, b W256) W256 { var r W256; r.v.Add(&a.v, &b.v); return r }

// Sub returns a wrapping (mod 2^256) difference.
func Sub(a, b W256) W256 { var r W256; r.v.Sub(&a.v, &b.v); return r }

// Mul returns a wrapping (mod 2^256) product.
func Mul(a, b W256) W256 { var r W256; r.v.Mul(&a.v, &b.v); return r }

// Div returns a / b, or zero if b is zero (EVM DIV convention).
func Div(a, b W256) W256 { var r W256; r.v.Div(&a.v, &b.v); return r }

// Mod returns a % b, or zero if b is zero (EVM MOD convention).
func Mod(a, b W256) W256 { var r W256; r.v.Mod(&a.v, &b.v); return r }

// SDiv returns the signed quotient of a and b, or zero if b is zero.
// MinI256 / -1 wraps to MinI256, matching two's-complement overflow.
func SDiv(a, b W256) W256 { var r W256; r.v.SDiv(&a.v, &b.v); return r }

// SMod returns the signed remainder of a and b, or zero if b is zero.
func SMod(a, b W256) W256 { var r W256; r.v.SMod(&a.v, &b.v); return r }

// And, Or, Xor, Not implement the bitwise opcodes.
func And(a, b W256) W256 { var r W256; r.v.And(&a.v, &b.v); return r }
func Or(a, b W256) W256  { var r W256; r.v.Or(&a.v, &b.v); return r }
func Xor(a, b W256) W256 { var r W256; r.v.Xor(&a.v, &b.v); return r }
func Not(a W256) W256    { var r W256; r.v.Not(&a.v); return r }

// Exp computes base**exponent, wrapping modulo 2^256, right-to-left
// square-and-multiply.
func Exp(base, exponent W256) W256 {
	var r W256
	r.v.Exp(&base.v, &exponent.v)
	return r
}

// Lsh returns a shifted left by shift bits; shift >= 256 yields zero.
func Lsh(a W256, shift W256) W256 {
	if shiftOverflows(shift) {
		return ZeroW256()
	}
	var r W256
	r.v.Lsh(&a.v, uint(shift.v.Uint64()))
	return r
}

// Rsh returns a shifted right (logical) by shift bits; shift >= 256 yields
// zero.
func Rsh(a W256, shift W256) W256 {
	if shiftOverflows(shift) {
		return ZeroW256()
	}
	var r W256
	r.v.Rsh(&a.v, uint(shift.v.Uint64()))
	return r
}

func shiftOverflows(shift W256) bool {
	return !shift.v.IsUint64() || shift.v.Uint64() >= 256
}

// Byte returns the i-th byte (0 = most significant) of x's big-endian form,
// or zero if i >= 32.
func Byte(i, x W256) W256 {
	var r W256
	if i.v.IsUint64() && i.v.Uint64() < 32 {
		b32 := x.Bytes32()
		r.v.SetUint64(uint64(b32[i.v.Uint64()]))
	}
	return r
}
