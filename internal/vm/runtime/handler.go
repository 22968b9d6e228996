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

// Package runtime wires a core.Machine to a host: resolving the Traps the
// core emits for anything it cannot decide by itself (account state, logs,
// hashing, sub-calls) and driving the Run/resume loop to completion.
package runtime

import "github.com/n42blockchain/coreevm/internal/vm/core"

// CreateResult is the outcome of a resolved CREATE trap: the exit reason,
// the address of the created contract (zero on failure), and the code or
// revert data it returned.
type CreateResult struct {
	Reason  core.ExitReason
	Address core.B160
	Output  []byte
}

// CallResult is the outcome of a resolved CALL-family trap.
type CallResult struct {
	Reason core.ExitReason
	Output []byte
}

// Handler resolves every opcode a core.Machine traps out on. A Handler owns
// account state, gas accounting and sub-call dispatch; the Machine it drives
// owns only stack, memory and program counter.
type Handler interface {
	// Keccak256 hashes data, backing the KECCAK256 opcode.
	Keccak256(data []byte) core.B256

	// Account state readers, backing BALANCE, EXTCODESIZE, EXTCODEHASH,
	// EXTCODECOPY, SLOAD and TLOAD.
	Nonce(addr core.B160) uint64
	Balance(addr core.B160) core.W256
	CodeSize(addr core.B160) uint64
	CodeHash(addr core.B160) core.B256
	Code(addr core.B160) []byte
	// Valids returns the JUMPDEST validity bitmap for addr's code, in the
	// format core.ComputeValids produces. A host is free to cache this
	// per contract code instead of rescanning it on every call frame.
	Valids(addr core.B160) []byte
	Storage(addr core.B160, key core.W256) core.W256
	TransientStorage(addr core.B160, key core.W256) core.W256

	// Environment readers, backing the block/tx-context opcodes.
	GasLeft() uint64
	GasPrice() core.W256
	Origin() core.B160
	BlockHash(number core.W256) core.B256
	BlockNumber() core.W256
	BlockCoinbase() core.B160
	BlockTimestamp() core.W256
	BlockDifficulty() core.W256
	BlockGasLimit() core.W256
	ChainID() core.W256

	// State mutators, backing SSTORE, TSTORE, LOG0..LOG4 and SELFDESTRUCT.
	SetStorage(addr core.B160, key, value core.W256) *core.ExitError
	SetTransientStorage(addr core.B160, key, value core.W256) *core.ExitError
	Log(addr core.B160, topics []core.B256, data []byte) *core.ExitError
	MarkDelete(addr, target core.B160) *core.ExitError

	// Create resolves a CREATE/CREATE2 trap.
	Create(caller core.B160, scheme core.CreateScheme, value core.W256, initCode []byte, gas *uint64) CreateResult
	// Call resolves a CALL/CALLCODE/DELEGATECALL/STATICCALL trap.
	Call(codeAddress core.B160, transfer *core.Transfer, input []byte, gas *uint64, isStatic bool, ctx core.Context) CallResult

	// PreValidate runs ahead of every step, letting the host enforce
	// cross-cutting constraints (e.g. the read-only/static-call opcode
	// denylist in ValidationProfile) before the opcode executes.
	PreValidate(ctx core.Context, op core.OpCode, stack *core.Stack) *core.ExitError

	// Other handles any trapped opcode not covered by the methods above.
	// Returning a non-nil *core.ExitFatal aborts the whole call; the demo
	// MemoryHandler returns FatalNotSupported for every opcode that reaches
	// it here, and never escalates with CallErrorAsFatal.
	Other(op core.OpCode, m *core.Machine) *core.ExitFatal
}
