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

func boolToW256(b bool) W256 {
	if b {
		return NewW256FromUint64(1)
	}
	return ZeroW256()
}

func evalLt(m *Machine) control  { return evalBinaryArith(m, func(a, b W256) W256 { return boolToW256(a.Lt(b)) }) }
func evalGt(m *Machine) control  { return evalBinaryArith(m, func(a, b W256) W256 { return boolToW256(a.Gt(b)) }) }
func evalSlt(m *Machine) control { return evalBinaryArith(m, func(a, b W256) W256 { return boolToW256(a.Slt(b)) }) }
func evalSgt(m *Machine) control { return evalBinaryArith(m, func(a, b W256) W256 { return boolToW256(a.Sgt(b)) }) }
func evalEq(m *Machine) control  { return evalBinaryArith(m, func(a, b W256) W256 { return boolToW256(a.Eq(b)) }) }

func evalIszero(m *Machine) control {
	a, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	if err := m.stack.Push(boolToW256(a.IsZero())); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalAnd(m *Machine) control { return evalBinaryArith(m, And) }
func evalOr(m *Machine) control  { return evalBinaryArith(m, Or) }
func evalXor(m *Machine) control { return evalBinaryArith(m, Xor) }

func evalNot(m *Machine) control {
	a, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	if err := m.stack.Push(Not(a)); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalByte(m *Machine) control { return evalBinaryArith(m, func(i, x W256) W256 { return Byte(i, x) }) }
func evalShl(m *Machine) control  { return evalBinaryArith(m, func(shift, value W256) W256 { return Lsh(value, shift) }) }
func evalShr(m *Machine) control  { return evalBinaryArith(m, func(shift, value W256) W256 { return Rsh(value, shift) }) }

// evalSar implements arithmetic right shift. Per the reference algorithm: if
// the value is zero or the shift is >= 256, the result is 0 for
// non-negative values and all-ones (-1) for negative ones; otherwise a
// non-negative value shifts logically, and a negative value is negated,
// shifted, decremented by one and incremented by one around the shift to
// get correct rounding, then re-negated.
func evalSar(m *Machine) control {
	shift, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	value, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	signed := FromW256(value)
	var result W256
	if value.IsZero() || shiftOverflows(shift) {
		if signed.IsNegative() {
			result = Not(ZeroW256()) // all-ones: -1
		} else {
			result = ZeroW256()
		}
	} else if !signed.IsNegative() {
		result = Rsh(value, shift)
	} else {
		one := NewW256FromUint64(1)
		shifted := Rsh(Sub(signed.Mag, one), shift)
		mag := Add(shifted, one)
		result = I256{Sign: SignMinus, Mag: mag}.Into()
	}
	if err := m.stack.Push(result); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}
