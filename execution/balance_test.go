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

	"github.com/stretchr/testify/require"

	"github.com/sasim081/linera-protocol/data/basics"
)

func TestSourcesBalance(t *testing.T) {
	grant := basics.Amount{Raw: 10}
	owner := basics.Amount{Raw: 5}
	sources := NewSources(&grant, &owner)

	balance, err := sources.Balance()
	require.NoError(t, err)
	require.Equal(t, basics.Amount{Raw: 15}, balance)
}

func TestSourcesBalanceOverflow(t *testing.T) {
	a := basics.MaxAmount
	b := basics.Amount{Raw: 1}
	sources := NewSources(&a, &b)

	_, err := sources.Balance()
	require.ErrorIs(t, err, basics.ErrOverflow)
}

func TestSourcesCreditGoesToLast(t *testing.T) {
	chain := basics.Amount{Raw: 10}
	owner := basics.Amount{Raw: 5}
	sources := NewSources(&chain, &owner)

	require.NoError(t, sources.TryAddAssign(basics.Amount{Raw: 7}))
	require.Equal(t, basics.Amount{Raw: 10}, chain)
	require.Equal(t, basics.Amount{Raw: 12}, owner)
}

func TestSourcesDebitFallback(t *testing.T) {
	// A debit larger than the first source drains it and takes the
	// remainder from the next one.
	first := basics.Amount{Raw: 10}
	second := basics.Amount{Raw: 5}
	sources := NewSources(&first, &second)

	require.NoError(t, sources.TrySubAssign(basics.Amount{Raw: 12}))
	require.Equal(t, basics.Amount{Raw: 0}, first)
	require.Equal(t, basics.Amount{Raw: 3}, second)
}

func TestSourcesDebitFirstSourceOnly(t *testing.T) {
	// A debit the first source can cover leaves the second untouched.
	first := basics.Amount{Raw: 10}
	second := basics.Amount{Raw: 5}
	sources := NewSources(&first, &second)

	require.NoError(t, sources.TrySubAssign(basics.Amount{Raw: 10}))
	require.Equal(t, basics.Amount{Raw: 0}, first)
	require.Equal(t, basics.Amount{Raw: 5}, second)
}

func TestSourcesDebitInsufficient(t *testing.T) {
	// When all sources together cannot cover the debit, the call fails
	// with an underflow and the drained sources stay drained.
	first := basics.Amount{Raw: 10}
	second := basics.Amount{Raw: 5}
	sources := NewSources(&first, &second)

	require.ErrorIs(t, sources.TrySubAssign(basics.Amount{Raw: 16}), basics.ErrUnderflow)
	require.Equal(t, basics.Amount{Raw: 0}, first)
	require.Equal(t, basics.Amount{Raw: 0}, second)
}

func TestSourcesDebitExactTotal(t *testing.T) {
	first := basics.Amount{Raw: 10}
	second := basics.Amount{Raw: 5}
	sources := NewSources(&first, &second)

	require.NoError(t, sources.TrySubAssign(basics.Amount{Raw: 15}))
	require.Equal(t, basics.Amount{Raw: 0}, first)
	require.Equal(t, basics.Amount{Raw: 0}, second)
}

func TestSourcesSingle(t *testing.T) {
	only := basics.Amount{Raw: 8}
	sources := NewSources(&only)

	require.NoError(t, sources.TrySubAssign(basics.Amount{Raw: 3}))
	require.Equal(t, basics.Amount{Raw: 5}, only)

	require.NoError(t, sources.TryAddAssign(basics.Amount{Raw: 1}))
	require.Equal(t, basics.Amount{Raw: 6}, only)
}
