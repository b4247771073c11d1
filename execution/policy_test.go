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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sasim081/linera-protocol/data/basics"
)

func TestPolicyPrices(t *testing.T) {
	policy := TestnetPolicy()

	fees, err := policy.OperationBytesPrice(100)
	require.NoError(t, err)
	require.Equal(t, basics.Amount{Raw: 100 * policy.OperationByte.Raw}, fees)

	fees, err = policy.BlobReadPrice(10)
	require.NoError(t, err)
	require.Equal(t, basics.Amount{Raw: policy.BlobRead.Raw + 10*policy.BlobByteRead.Raw}, fees)

	fees, err = policy.FuelPrice(7, VMWasm)
	require.NoError(t, err)
	require.Equal(t, basics.Amount{Raw: 7 * policy.WasmFuelUnit.Raw}, fees)

	fees, err = policy.FuelPrice(7, VMEvm)
	require.NoError(t, err)
	require.Equal(t, basics.Amount{Raw: 7 * policy.EvmFuelUnit.Raw}, fees)
}

func TestPolicyPriceOverflow(t *testing.T) {
	policy := TestnetPolicy()
	policy.MessageByte = basics.Amount{Raw: 2}

	_, err := policy.MessageBytesPrice(math.MaxUint64)
	require.ErrorIs(t, err, basics.ErrOverflow)

	policy.BlobBytePublished = basics.MaxAmount
	policy.BlobPublished = basics.Amount{Raw: 1}
	_, err = policy.BlobPublishedPrice(1)
	require.ErrorIs(t, err, basics.ErrOverflow)
}

func TestPolicyRemainingFuel(t *testing.T) {
	policy := TestnetPolicy()
	policy.WasmFuelUnit = basics.Amount{Raw: 10}

	require.Equal(t, uint64(5), policy.RemainingFuel(basics.Amount{Raw: 59}, VMWasm))

	// A free schedule never limits fuel by balance.
	policy.WasmFuelUnit = basics.Amount{}
	require.Equal(t, uint64(math.MaxUint64), policy.RemainingFuel(basics.Amount{}, VMWasm))
}

func TestPolicyCheckBlobSize(t *testing.T) {
	policy := TestnetPolicy()
	policy.MaximumBlobSize = 4

	require.NoError(t, policy.CheckBlobSize([]byte("1234")))

	err := policy.CheckBlobSize([]byte("12345"))
	var tooLarge BlobTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}

func TestNoFeePolicyChargesNothing(t *testing.T) {
	c, account := newTestController(NoFeePolicy(), 0)

	require.NoError(t, c.TrackOperation(SystemOperation()))
	require.NoError(t, c.TrackFuel(1_000_000, VMWasm))
	require.NoError(t, c.TrackBytesRead(1_000_000))
	require.NoError(t, c.TrackHTTPRequest())
	require.True(t, account.IsZero())
}
