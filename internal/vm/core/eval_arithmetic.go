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

// evalAdd, evalSub, evalMul, evalDiv, evalSdiv, evalMod, evalSmod implement
// the wrapping binary arithmetic opcodes: pop two operands, push one
// result, continue. a is the top of stack, b the element beneath it, so
// f(a, b) computes top OP second for non-commutative ops (SUB, DIV, ...).
func evalBinaryArith(m *Machine, f func(a, b W256) W256) control {
	a, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	b, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	if err := m.stack.Push(f(a, b)); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalAdd(m *Machine) control  { return evalBinaryArith(m, Add) }
func evalSub(m *Machine) control  { return evalBinaryArith(m, Sub) }
func evalMul(m *Machine) control  { return evalBinaryArith(m, Mul) }
func evalDiv(m *Machine) control  { return evalBinaryArith(m, Div) }
func evalSdiv(m *Machine) control { return evalBinaryArith(m, SDiv) }
func evalMod(m *Machine) control  { return evalBinaryArith(m, Mod) }
func evalSmod(m *Machine) control { return evalBinaryArith(m, SMod) }

// evalAddmod and evalMulmod widen both operands (and the modulus) to W512
// before reducing, so that op1+op2 or op1*op2 is never truncated to 256
// bits ahead of the modular reduction.
func evalAddmod(m *Machine) control {
	return evalTernaryMod(m, func(a, b, mod W512) W512 { return ModW512(AddW512(a, b), mod) })
}

func evalMulmod(m *Machine) control {
	return evalTernaryMod(m, func(a, b, mod W512) W512 { return ModW512(MulW512(a, b), mod) })
}

func evalTernaryMod(m *Machine, f func(a, b, mod W512) W512) control {
	op1, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	op2, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	op3, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	if op3.IsZero() {
		if err := m.stack.Push(ZeroW256()); err != nil {
			return controlExitWith(ExitWithError(err))
		}
		return controlContinueBy(1)
	}
	wide := f(WidenW256(op1), WidenW256(op2), WidenW256(op3))
	result, ok := wide.NarrowW256()
	if !ok {
		// Unreachable: the modulus is < 2^256, so the reduced value always
		// fits in 256 bits.
		result = ZeroW256()
	}
	if err := m.stack.Push(result); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}

func evalExp(m *Machine) control { return evalBinaryArith(m, Exp) }

// evalSignextend implements SIGNEXTEND(k, x): for k >= 31 it is the
// identity; otherwise bit b = 8k+7 of x decides whether to sign-extend with
// ones or mask down to the low b+1 bits.
func evalSignextend(m *Machine) control {
	k, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	x, err := m.stack.Pop()
	if err != nil {
		return controlExitWith(ExitWithError(err))
	}
	result := x
	if k.Cmp(NewW256FromUint64(31)) < 0 {
		kv := k.v.Uint64()
		bitIndex := 8*kv + 7
		signBitSet := !And(Rsh(x, NewW256FromUint64(bitIndex)), NewW256FromUint64(1)).IsZero()
		if signBitSet {
			mask := Lsh(Not(ZeroW256()), NewW256FromUint64(bitIndex+1))
			result = Or(x, mask)
		} else {
			mask := Sub(Lsh(NewW256FromUint64(1), NewW256FromUint64(bitIndex+1)), NewW256FromUint64(1))
			result = And(x, mask)
		}
	}
	if err := m.stack.Push(result); err != nil {
		return controlExitWith(ExitWithError(err))
	}
	return controlContinueBy(1)
}
