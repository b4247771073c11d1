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
	"github.com/sasim081/linera-protocol/data/basics"
)

// BalanceHolder is the capability to read and adjust a funding balance.
// The simplest holder is a *basics.Amount; Sources implements the same
// capability over a prioritized list of accounts.
type BalanceHolder interface {
	// Balance reports the funds currently available. The only possible
	// error is an overflow while summing multiple sources.
	Balance() (basics.Amount, error)

	// TryAddAssign credits the holder.
	TryAddAssign(basics.Amount) error

	// TrySubAssign debits the holder, or returns basics.ErrUnderflow if
	// the funds in scope are insufficient.
	TrySubAssign(basics.Amount) error
}

// Sources is a temporary object holding references to funding sources, in
// decreasing priority order. It is assembled fresh for each charging
// scope by WithStateAndGrant and never persisted.
type Sources struct {
	sources []*basics.Amount
}

// NewSources builds a source list. The order is the spending priority.
func NewSources(sources ...*basics.Amount) *Sources {
	return &Sources{sources: sources}
}

// Balance returns the sum of all sources.
func (s *Sources) Balance() (basics.Amount, error) {
	var total basics.Amount
	for _, source := range s.sources {
		if err := total.TryAddAssign(*source); err != nil {
			return basics.Amount{}, err
		}
	}
	return total, nil
}

// TryAddAssign credits the last source in the list: refunds go
// preferentially to the owner's account when one is present, since it is
// appended last.
func (s *Sources) TryAddAssign(other basics.Amount) error {
	if len(s.sources) == 0 {
		panic("at least one source")
	}
	return s.sources[len(s.sources)-1].TryAddAssign(other)
}

// TrySubAssign debits the sources front to back. A source that cannot
// cover the remaining amount is drained to zero and the remainder carries
// over to the next one. If the list runs out first, the debit fails with
// basics.ErrUnderflow; amounts already drained are not refunded.
func (s *Sources) TrySubAssign(other basics.Amount) error {
	for _, source := range s.sources {
		if source.TrySubAssign(other) == nil {
			return nil
		}
		// *source < other here, so this cannot fail.
		_ = other.TrySubAssign(*source)
		*source = basics.Amount{}
	}
	if !other.IsZero() {
		return basics.ErrUnderflow
	}
	return nil
}
