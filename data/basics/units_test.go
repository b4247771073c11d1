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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountTryAddAssign(t *testing.T) {
	a := Amount{Raw: 10}
	require.NoError(t, a.TryAddAssign(Amount{Raw: 5}))
	require.Equal(t, Amount{Raw: 15}, a)

	a = MaxAmount
	require.ErrorIs(t, a.TryAddAssign(Amount{Raw: 1}), ErrOverflow)
	// The amount is left unchanged on failure.
	require.Equal(t, MaxAmount, a)
}

func TestAmountTrySubAssign(t *testing.T) {
	a := Amount{Raw: 10}
	require.NoError(t, a.TrySubAssign(Amount{Raw: 10}))
	require.True(t, a.IsZero())

	a = Amount{Raw: 10}
	require.ErrorIs(t, a.TrySubAssign(Amount{Raw: 11}), ErrUnderflow)
	require.Equal(t, Amount{Raw: 10}, a)
}

func TestAmountBalance(t *testing.T) {
	a := Amount{Raw: 42}
	balance, err := a.Balance()
	require.NoError(t, err)
	require.Equal(t, a, balance)
}

func TestAccountOwnerSize(t *testing.T) {
	require.Equal(t, 2, ReservedOwner(0).Size())
	require.Equal(t, 33, Address32Owner([32]byte{1}).Size())
	require.Equal(t, 21, Address20Owner([20]byte{1}).Size())
}
