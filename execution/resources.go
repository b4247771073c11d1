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

// Package execution tracks the resources used during the execution of a
// transaction and charges the corresponding fees against a prioritized
// set of funding accounts.
package execution

import (
	"time"

	"github.com/sasim081/linera-protocol/data/basics"
)

// Serialized sizes of the values handed to applications by runtime calls.
// Charged as runtime bytes when an application reads them.
const (
	// RuntimeAmountSize is the runtime size of an Amount on the wire
	// (a 128-bit integer).
	RuntimeAmountSize uint32 = 16

	// RuntimeApplicationIDSize is the runtime size of an ApplicationID.
	RuntimeApplicationIDSize uint32 = 32

	// RuntimeBlockHeightSize is the runtime size of a BlockHeight.
	RuntimeBlockHeightSize uint32 = 8

	// RuntimeChainIDSize is the runtime size of a ChainID.
	RuntimeChainIDSize uint32 = 32

	// RuntimeTimestampSize is the runtime size of a Timestamp.
	RuntimeTimestampSize uint32 = 8

	// RuntimeOwnerWeightSize is the runtime size of the weight of an owner.
	RuntimeOwnerWeightSize uint32 = 8

	// RuntimeConstantChainOwnershipSize is the constant part of a
	// serialized ChainOwnership: one uint32 and four time deltas.
	RuntimeConstantChainOwnershipSize uint32 = 4 + 4*8
)

// ResourceTracker accumulates the resources consumed during one execution
// scope: a block, the processing of a single message, or a phase within
// those. Every counter only grows, except BytesStored which is a signed
// net delta. Counters are mutated exclusively through a controller, and
// every mutation is overflow-checked.
type ResourceTracker struct {
	// BlockSize is the total serialized size of the block so far.
	BlockSize uint64
	// EvmFuel is the EVM fuel used so far.
	EvmFuel uint64
	// WasmFuel is the Wasm fuel used so far.
	WasmFuel uint64
	// ReadOperations is the number of read operations.
	ReadOperations uint32
	// WriteOperations is the number of write operations.
	WriteOperations uint32
	// BytesRuntime is the number of bytes read through runtime calls.
	BytesRuntime uint32
	// BytesRead is the number of bytes read from storage.
	BytesRead uint64
	// BytesWritten is the number of bytes written to storage.
	BytesWritten uint64
	// BlobsRead is the number of blobs read.
	BlobsRead uint32
	// BlobsPublished is the number of blobs published.
	BlobsPublished uint32
	// BlobBytesRead is the number of blob bytes read.
	BlobBytesRead uint64
	// BlobBytesPublished is the number of blob bytes published.
	BlobBytesPublished uint64
	// BytesStored is the change in the number of bytes stored by user
	// applications.
	BytesStored int32
	// Operations is the number of operations executed.
	Operations uint32
	// OperationBytes is the total argument size of user operations.
	OperationBytes uint64
	// Messages is the number of outgoing messages created (system and user).
	Messages uint32
	// MessageBytes is the total payload size of outgoing user messages.
	MessageBytes uint64
	// HTTPRequests is the number of HTTP requests performed.
	HTTPRequests uint32
	// ServiceOracleQueries is the number of calls to services as oracles.
	ServiceOracleQueries uint32
	// ServiceOracleExecution is the time spent executing services as
	// oracles.
	ServiceOracleExecution time.Duration
	// Grants is the amount allocated to message grants.
	Grants basics.Amount
}

// fuel returns the fuel pool of the given VM runtime.
func (t *ResourceTracker) fuel(vm VMRuntime) uint64 {
	if vm == VMEvm {
		return t.EvmFuel
	}
	return t.WasmFuel
}
