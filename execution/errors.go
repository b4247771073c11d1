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
	"errors"
	"fmt"

	"github.com/sasim081/linera-protocol/data/basics"
)

// Terminal errors surfaced by the metering engine. None of them is
// retried: the caller decides whether to abort the whole block or only
// the failing operation. Counters already incremented before the failure
// are not rolled back.
var (
	// ErrExcessiveRead means the per-block limit on bytes read was reached.
	ErrExcessiveRead = errors.New("too many bytes read in one block")
	// ErrExcessiveWrite means the per-block limit on bytes written was reached.
	ErrExcessiveWrite = errors.New("too many bytes written in one block")
	// ErrBlockTooLarge means the serialized block exceeds the maximum size.
	ErrBlockTooLarge = errors.New("block too large")
	// ErrServiceOracleExecutionTimeExceeded means services spent too long
	// running as oracles.
	ErrServiceOracleExecutionTimeExceeded = errors.New("service oracle execution time exceeded")
	// ErrServiceOracleResponseTooLarge means an oracle response exceeds the
	// configured maximum size.
	ErrServiceOracleResponseTooLarge = errors.New("service oracle response too large")
)

// FeesExceedFundingError is returned when a charge cannot be covered by
// the funding sources in scope. It carries the fee attempted and the
// balance observed at the time of the failure.
type FeesExceedFundingError struct {
	Fees    basics.Amount
	Balance basics.Amount
}

func (e FeesExceedFundingError) Error() string {
	return fmt.Sprintf("fees %v exceed the funding balance %v", e.Fees, e.Balance)
}

// MaximumFuelExceededError is returned when the per-block fuel cap of one
// VM runtime is breached. The two runtimes have independent caps.
type MaximumFuelExceededError struct {
	VM VMRuntime
}

func (e MaximumFuelExceededError) Error() string {
	return fmt.Sprintf("maximum %s fuel per block exceeded", e.VM)
}

// BlobTooLargeError is returned when a blob's content exceeds the maximum
// blob size allowed by the policy.
type BlobTooLargeError struct {
	Size    uint64
	Maximum uint64
}

func (e BlobTooLargeError) Error() string {
	return fmt.Sprintf("blob size %d exceeds the maximum of %d bytes", e.Size, e.Maximum)
}
