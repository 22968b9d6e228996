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

type handlerFunc func(m *Machine) control

var (
	dispatchOnce  sync.Once
	dispatchTable [256]handlerFunc
)

// dispatch routes op to its handler, building the table once on first use.
// Opcodes the core doesn't implement directly (anything touching
// environment, state, logs, hashing or sub-calls) are routed to a Trap,
// handing control to the host.
func dispatch(m *Machine, op OpCode) control {
	dispatchOnce.Do(buildDispatchTable)
	if h := dispatchTable[op]; h != nil {
		return h(m)
	}
	return controlTrapWith(op)
}

func buildDispatchTable() {
	t := &dispatchTable

	t[STOP] = evalStop
	t[ADD] = evalAdd
	t[MUL] = evalMul
	t[SUB] = evalSub
	t[DIV] = evalDiv
	t[SDIV] = evalSdiv
	t[MOD] = evalMod
	t[SMOD] = evalSmod
	t[ADDMOD] = evalAddmod
	t[MULMOD] = evalMulmod
	t[EXP] = evalExp
	t[SIGNEXTEND] = evalSignextend

	t[LT] = evalLt
	t[GT] = evalGt
	t[SLT] = evalSlt
	t[SGT] = evalSgt
	t[EQ] = evalEq
	t[ISZERO] = evalIszero
	t[AND] = evalAnd
	t[OR] = evalOr
	t[XOR] = evalXor
	t[NOT] = evalNot
	t[BYTE] = evalByte
	t[SHL] = evalShl
	t[SHR] = evalShr
	t[SAR] = evalSar

	t[CALLDATALOAD] = evalCalldataload
	t[CALLDATASIZE] = evalCalldatasize
	t[CALLDATACOPY] = evalCalldatacopy
	t[CODESIZE] = evalCodesize
	t[CODECOPY] = evalCodecopy

	t[POP] = evalPop
	t[MLOAD] = evalMload
	t[MSTORE] = evalMstore
	t[MSTORE8] = evalMstore8
	t[MCOPY] = evalMcopy
	t[JUMP] = evalJump
	t[JUMPI] = evalJumpi
	t[PC] = evalPc
	t[MSIZE] = evalMsize
	t[JUMPDEST] = evalJumpdest
	t[PUSH0] = evalPush0

	for n := 1; n <= 32; n++ {
		size := n
		t[PUSH1+OpCode(n-1)] = func(m *Machine) control { return evalPush(m, size) }
	}
	for n := 1; n <= 16; n++ {
		depth := n
		t[DUP1+OpCode(n-1)] = func(m *Machine) control { return evalDup(m, depth) }
	}
	for n := 1; n <= 16; n++ {
		depth := n
		t[SWAP1+OpCode(n-1)] = func(m *Machine) control { return evalSwap(m, depth) }
	}

	t[RETURN] = evalReturn
	t[REVERT] = evalRevert
	t[INVALID] = evalInvalid
}
