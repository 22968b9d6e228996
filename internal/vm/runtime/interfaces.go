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

package runtime

import "github.com/n42blockchain/coreevm/internal/vm/core"

// Caller is the sub-execution slice of Handler: the two trap resolutions
// (CREATE, CALL-family) a host must implement to let a Machine make sub-calls.
// Split out on its own so test doubles and tracers can depend on just this
// much instead of the full Handler surface.
//
// Architecture:
//
//	┌──────────────┐     ┌──────────────┐
//	│    Runner    │     │   tracers    │
//	└──────┬───────┘     └──────┬───────┘
//	       │                    │
//	       ▼                    ▼
//	┌──────────────────────────────────┐
//	│           Caller Interface       │
//	├──────────────────────────────────┤
//	│         Create(), Call()         │
//	└──────────────┬───────────────────┘
//	               │ implements
//	               ▼
//	       ┌──────────────┐
//	       │ MemoryHandler │
//	       └──────────────┘
type Caller interface {
	// Create resolves a CREATE/CREATE2 trap raised by a core.Machine.
	Create(caller core.B160, scheme core.CreateScheme, value core.W256, initCode []byte, gas *uint64) CreateResult

	// Call resolves a CALL/CALLCODE/DELEGATECALL/STATICCALL trap.
	Call(codeAddress core.B160, transfer *core.Transfer, input []byte, gas *uint64, isStatic bool, ctx core.Context) CallResult
}

// StateReader is the read-only slice of Handler backing the account-state
// and environment opcodes (BALANCE, EXTCODESIZE, SLOAD, ORIGIN, ...).
type StateReader interface {
	Nonce(addr core.B160) uint64
	Balance(addr core.B160) core.W256
	CodeSize(addr core.B160) uint64
	CodeHash(addr core.B160) core.B256
	Code(addr core.B160) []byte
	Storage(addr core.B160, key core.W256) core.W256
}

var (
	_ Caller      = (*MemoryHandler)(nil)
	_ StateReader = (*MemoryHandler)(nil)
	_ Handler     = (*MemoryHandler)(nil)
)
