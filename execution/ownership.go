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

// TimeoutConfig holds the round timeouts of a chain.
type TimeoutConfig struct {
	FastRoundDuration basics.TimeDelta
	BaseTimeout       basics.TimeDelta
	TimeoutIncrement  basics.TimeDelta
	FallbackDuration  basics.TimeDelta
}

// ChainOwnership describes who may propose blocks on a chain.
type ChainOwnership struct {
	// SuperOwners can propose fast blocks in round zero.
	SuperOwners []basics.AccountOwner
	// Owners take turns proposing in later rounds, weighted for leader
	// election.
	Owners map[basics.AccountOwner]uint64
	// MultiLeaderRounds is the number of initial rounds in which all
	// owners are allowed to propose.
	MultiLeaderRounds uint32
	Timeouts          TimeoutConfig
}
