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

// Sign is the sign of an I256 value. Zero is its own sign so that no
// (Minus, 0) pair ever escapes a computation.
type Sign int

const (
	SignZero Sign = iota
	SignPlus
	SignMinus
)

// I256 is W256 viewed as a two's-complement signed integer, decomposed into
// a sign and an unsigned magnitude. This mirrors the (sign, magnitude) split
// the reference implementation's arithmetic is built on, which makes SDIV,
// SMOD and SAR straightforward to express without per-operation two's
// complement juggling.
type I256 struct {
	Sign Sign
	Mag  W256
}

var signBit = func() W256 {
	var w W256
	w.v.SetOne()
	w.v.Lsh(&w.v, 255)
	return w
}()

// FromW256 decomposes x into its signed representation.
func FromW256(x W256) I256 {
	if x.IsZero() {
		return I256{Sign: SignZero}
	}
	if And(x, signBit).IsZero() {
		return I256{Sign: SignPlus, Mag: x}
	}
	// Negative: magnitude is the two's-complement negation, i.e. ^x + 1.
	mag := Add(Not(x), NewW256FromUint64(1))
	return I256{Sign: SignMinus, Mag: mag}
}

// Into recomposes the two's-complement W256 encoding of x.
func (x I256) Into() W256 {
	switch x.Sign {
	case SignZero:
		return ZeroW256()
	case SignPlus:
		return x.Mag
	default:
		return Add(Not(x.Mag), NewW256FromUint64(1))
	}
}

// IsNegative reports whether x represents a negative value.
func (x I256) IsNegative() bool { return x.Sign == SignMinus }
