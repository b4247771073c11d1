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

package execution

// VMRuntime selects the virtual machine technology executing an
// application. Fuel is metered per runtime; the pools are never merged.
type VMRuntime uint8

const (
	// VMWasm runs Wasm bytecode.
	VMWasm VMRuntime = iota
	// VMEvm runs EVM bytecode.
	VMEvm
)

func (vm VMRuntime) String() string {
	switch vm {
	case VMWasm:
		return "wasm"
	case VMEvm:
		return "evm"
	default:
		return "unknown"
	}
}
