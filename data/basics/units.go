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
	"errors"
	"math"
	"strconv"
)

// Arithmetic errors returned by checked Amount operations. Any balance or
// counter update that would wrap around surfaces one of these instead of
// truncating silently.
var (
	// ErrOverflow is returned when an addition or multiplication would wrap.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnderflow is returned when a subtraction would go below zero.
	ErrUnderflow = errors.New("arithmetic underflow")
)

// Amount is a quantity of native tokens, in the smallest indivisible unit.
type Amount struct {
	Raw uint64
}

// MaxAmount is the largest representable Amount.
var MaxAmount = Amount{Raw: math.MaxUint64}

// IsZero returns true when the amount holds no value.
func (a Amount) IsZero() bool {
	return a.Raw == 0
}

// LessOrEqual returns true when a <= b.
func (a Amount) LessOrEqual(b Amount) bool {
	return a.Raw <= b.Raw
}

func (a Amount) String() string {
	return strconv.FormatUint(a.Raw, 10)
}

// Balance reports the amount itself: a plain Amount is the simplest
// funding source.
func (a Amount) Balance() (Amount, error) {
	return a, nil
}

// TryAddAssign adds other to a, or returns ErrOverflow leaving a unchanged.
func (a *Amount) TryAddAssign(other Amount) error {
	res, overflowed := OAdd(a.Raw, other.Raw)
	if overflowed {
		return ErrOverflow
	}
	a.Raw = res
	return nil
}

// TrySubAssign subtracts other from a, or returns ErrUnderflow leaving a
// unchanged.
func (a *Amount) TrySubAssign(other Amount) error {
	res, overflowed := OSub(a.Raw, other.Raw)
	if overflowed {
		return ErrUnderflow
	}
	a.Raw = res
	return nil
}

// BlockHeight is a block height within a chain.
type BlockHeight uint64

// Timestamp is a number of microseconds since the Unix epoch.
type Timestamp uint64

// TimeDelta is a duration in microseconds.
type TimeDelta uint64
