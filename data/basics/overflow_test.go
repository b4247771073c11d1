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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOAdd(t *testing.T) {
	res, overflowed := OAdd(uint64(1), uint64(2))
	require.False(t, overflowed)
	require.Equal(t, uint64(3), res)

	_, overflowed = OAdd(uint64(math.MaxUint64), uint64(1))
	require.True(t, overflowed)

	res32, overflowed := OAdd(uint32(math.MaxUint32-1), uint32(1))
	require.False(t, overflowed)
	require.Equal(t, uint32(math.MaxUint32), res32)
}

func TestOSub(t *testing.T) {
	res, overflowed := OSub(uint64(2), uint64(1))
	require.False(t, overflowed)
	require.Equal(t, uint64(1), res)

	_, overflowed = OSub(uint64(1), uint64(2))
	require.True(t, overflowed)
}

func TestOMul(t *testing.T) {
	res, overflowed := OMul(uint64(3), uint64(4))
	require.False(t, overflowed)
	require.Equal(t, uint64(12), res)

	res, overflowed = OMul(uint64(math.MaxUint64), uint64(0))
	require.False(t, overflowed)
	require.Equal(t, uint64(0), res)

	_, overflowed = OMul(uint64(math.MaxUint64), uint64(2))
	require.True(t, overflowed)
}

func TestOAddS(t *testing.T) {
	res, overflowed := OAddS(int32(-5), int32(3))
	require.False(t, overflowed)
	require.Equal(t, int32(-2), res)

	_, overflowed = OAddS(int32(math.MaxInt32), int32(1))
	require.True(t, overflowed)

	_, overflowed = OAddS(int32(math.MinInt32), int32(-1))
	require.True(t, overflowed)

	res, overflowed = OAddS(int32(math.MinInt32), int32(math.MaxInt32))
	require.False(t, overflowed)
	require.Equal(t, int32(-1), res)
}

func TestSaturate(t *testing.T) {
	require.Equal(t, uint64(0), SubSaturate(uint64(3), uint64(4)))
	require.Equal(t, uint64(1), SubSaturate(uint64(4), uint64(3)))
	require.Equal(t, uint64(12), MulSaturate(uint64(3), uint64(4)))
	require.Equal(t, uint64(math.MaxUint64), MulSaturate(uint64(math.MaxUint64), uint64(2)))
}

func TestOSubA(t *testing.T) {
	res, overflowed := OSubA(Amount{Raw: 3}, Amount{Raw: 2})
	require.False(t, overflowed)
	require.Equal(t, Amount{Raw: 1}, res)

	_, overflowed = OSubA(Amount{Raw: 2}, Amount{Raw: 3})
	require.True(t, overflowed)
}
