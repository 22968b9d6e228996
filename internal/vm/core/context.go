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

// CreateScheme distinguishes the two ways a contract's address may be
// derived on CREATE.
type CreateScheme struct {
	IsCreate2 bool
	Salt      W256 // only meaningful when IsCreate2
}

// CreateSchemeLegacy builds the classic sender+nonce derivation scheme.
func CreateSchemeLegacy() CreateScheme { return CreateScheme{} }

// CreateSchemeCreate2 builds the salted CREATE2 derivation scheme.
func CreateSchemeCreate2(salt W256) CreateScheme {
	return CreateScheme{IsCreate2: true, Salt: salt}
}

// CallSchemeKind discriminates the four ways one contract may invoke
// another.
type CallSchemeKind uint8

const (
	CallSchemeCall CallSchemeKind = iota
	CallSchemeCallCode
	CallSchemeDelegateCall
	CallSchemeStaticCall
)

func (k CallSchemeKind) String() string {
	switch k {
	case CallSchemeCall:
		return "call"
	case CallSchemeCallCode:
		return "callcode"
	case CallSchemeDelegateCall:
		return "delegatecall"
	case CallSchemeStaticCall:
		return "staticcall"
	default:
		return "unknown"
	}
}

// Transfer describes a value movement accompanying a CALL or CREATE, as
// requested by a Trap; the host is responsible for actually moving balances.
type Transfer struct {
	Source      B160
	Destination B160
	Value       W256
}

// Context carries the environment a running Machine was given by its host:
// the executing contract's own address and balance-relevant identity, plus
// the immutable transaction-level facts exposed to opcodes like ORIGIN,
// CALLER and CALLVALUE. The Machine itself never reads these fields; they
// exist so a Handler has one bundle to pass down a call chain.
type Context struct {
	Address     B160
	Caller      B160
	CallValue   W256
	Origin      B160
	GasPrice    W256
	BlockNumber W256
	Timestamp   W256
	Difficulty  W256
	ChainID     W256
}
