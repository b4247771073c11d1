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

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/sasim081/linera-protocol/data/basics"
)

func TestRuntimeSizeConstants(t *testing.T) {
	require.Equal(t, uintptr(RuntimeChainIDSize), unsafe.Sizeof(basics.ChainID{}))
	require.Equal(t, uintptr(RuntimeApplicationIDSize), unsafe.Sizeof(basics.ApplicationID{}))
	require.Equal(t, uintptr(RuntimeBlockHeightSize), unsafe.Sizeof(basics.BlockHeight(0)))
	require.Equal(t, uintptr(RuntimeTimestampSize), unsafe.Sizeof(basics.Timestamp(0)))
	require.Equal(t, uintptr(RuntimeOwnerWeightSize), unsafe.Sizeof(uint64(0)))
	// Amounts travel as 128-bit integers on the wire.
	require.Equal(t, uint32(16), RuntimeAmountSize)
	require.Equal(t, uint32(4+4*8), RuntimeConstantChainOwnershipSize)
}

func TestTrackerFuelPools(t *testing.T) {
	tracker := ResourceTracker{WasmFuel: 10, EvmFuel: 20}
	require.Equal(t, uint64(10), tracker.fuel(VMWasm))
	require.Equal(t, uint64(20), tracker.fuel(VMEvm))
}
