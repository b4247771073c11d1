// Copyright (C) 2024-2026 the linera-protocol authors.
// This file is part of linera-protocol
//
// linera-protocol is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// linera-protocol is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with linera-protocol.  If not, see <https://www.gnu.org/licenses/>.

package basics

import (
	"encoding/hex"
	"fmt"
)

// ChainID identifies a microchain.
type ChainID [32]byte

func (id ChainID) String() string {
	return hex.EncodeToString(id[:])
}

// ApplicationID identifies an application running on a chain. The zero
// value denotes the system application.
type ApplicationID [32]byte

func (id ApplicationID) String() string {
	return hex.EncodeToString(id[:])
}

// IsSystem returns true for the system application.
func (id ApplicationID) IsSystem() bool {
	return id == ApplicationID{}
}

// AccountOwnerKind discriminates the supported owner address formats.
type AccountOwnerKind uint8

const (
	// OwnerReserved is a single-byte address reserved for the protocol.
	OwnerReserved AccountOwnerKind = iota
	// OwnerAddress32 is a 32-byte public-key derived address.
	OwnerAddress32
	// OwnerAddress20 is a 20-byte EVM-compatible address.
	OwnerAddress20
)

// AccountOwner identifies the owner of an account. It is a comparable
// value so it can key balance maps directly.
type AccountOwner struct {
	Kind AccountOwnerKind
	// Addr holds the address bytes. 20-byte addresses occupy the prefix;
	// reserved owners use only the first byte.
	Addr [32]byte
}

// ReservedOwner builds a protocol-reserved owner from its tag byte.
func ReservedOwner(tag uint8) AccountOwner {
	var owner AccountOwner
	owner.Kind = OwnerReserved
	owner.Addr[0] = tag
	return owner
}

// Address32Owner builds an owner from a 32-byte address.
func Address32Owner(addr [32]byte) AccountOwner {
	return AccountOwner{Kind: OwnerAddress32, Addr: addr}
}

// Address20Owner builds an owner from a 20-byte address.
func Address20Owner(addr [20]byte) AccountOwner {
	var owner AccountOwner
	owner.Kind = OwnerAddress20
	copy(owner.Addr[:], addr[:])
	return owner
}

// Size returns the serialized size of the owner: a one-byte kind tag
// followed by the address bytes of that kind.
func (o AccountOwner) Size() int {
	switch o.Kind {
	case OwnerReserved:
		return 2
	case OwnerAddress20:
		return 21
	default:
		return 33
	}
}

func (o AccountOwner) String() string {
	switch o.Kind {
	case OwnerReserved:
		return fmt.Sprintf("reserved:%02x", o.Addr[0])
	case OwnerAddress20:
		return "0x" + hex.EncodeToString(o.Addr[:20])
	default:
		return "0x" + hex.EncodeToString(o.Addr[:])
	}
}
