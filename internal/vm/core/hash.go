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

import "github.com/ethereum/go-ethereum/common"

// B160 is a 20-byte address, aliased to go-ethereum's common.Address so the
// Handler boundary composes directly with go-ethereum-flavored hosts.
type B160 = common.Address

// B256 is a 32-byte hash, aliased to go-ethereum's common.Hash.
type B256 = common.Hash

// W256ToB256 reinterprets a W256 as a 32-byte big-endian hash.
func W256ToB256(x W256) B256 {
	return B256(x.Bytes32())
}

// B256ToW256 reinterprets a 32-byte hash as a W256.
func B256ToW256(h B256) W256 {
	return W256FromBigEndian(h[:])
}
