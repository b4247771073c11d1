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

	"github.com/sasim081/linera-protocol/data/basics"
)

// ResourceControlPolicy is the fee schedule and the resource limits
// applied while executing blocks. It is immutable for the duration of an
// execution scope; controllers share one instance.
type ResourceControlPolicy struct {
	// WasmFuelUnit is the price per unit of Wasm fuel.
	WasmFuelUnit basics.Amount
	// EvmFuelUnit is the price per unit of EVM fuel.
	EvmFuelUnit basics.Amount
	// ReadOperation is the price of one read operation.
	ReadOperation basics.Amount
	// WriteOperation is the price of one write operation.
	WriteOperation basics.Amount
	// ByteRead is the price per byte read from storage.
	ByteRead basics.Amount
	// ByteWritten is the price per byte written to storage.
	ByteWritten basics.Amount
	// ByteRuntime is the price per byte read through runtime calls.
	ByteRuntime basics.Amount
	// Operation is the flat price of executing one operation.
	Operation basics.Amount
	// OperationByte is the price per byte of a user operation's argument.
	OperationByte basics.Amount
	// Message is the flat price of creating one outgoing message.
	Message basics.Amount
	// MessageByte is the price per byte of a user message's payload.
	MessageByte basics.Amount
	// HTTPRequest is the flat price of performing one HTTP request.
	HTTPRequest basics.Amount
	// ServiceAsOracleQuery is the flat price of calling a service as an
	// oracle.
	ServiceAsOracleQuery basics.Amount
	// BlobRead is the flat price of reading one blob.
	BlobRead basics.Amount
	// BlobPublished is the flat price of publishing one blob.
	BlobPublished basics.Amount
	// BlobByteRead is the price per blob byte read.
	BlobByteRead basics.Amount
	// BlobBytePublished is the price per blob byte published.
	BlobBytePublished basics.Amount

	// MaximumWasmFuelPerBlock caps the Wasm fuel spent in one block.
	MaximumWasmFuelPerBlock uint64
	// MaximumEvmFuelPerBlock caps the EVM fuel spent in one block.
	// Independent of the Wasm cap.
	MaximumEvmFuelPerBlock uint64
	// MaximumServiceOracleExecutionMs caps the total time services may
	// spend executing as oracles in one block, in milliseconds.
	MaximumServiceOracleExecutionMs uint64
	// MaximumBlockSize caps the serialized size of a block.
	MaximumBlockSize uint64
	// MaximumBlobSize caps the content size of a single published blob.
	MaximumBlobSize uint64
	// MaximumBytesReadPerBlock caps the bytes read from storage in one
	// block.
	MaximumBytesReadPerBlock uint64
	// MaximumBytesWrittenPerBlock caps the bytes written to storage in one
	// block.
	MaximumBytesWrittenPerBlock uint64
	// MaximumOracleResponseBytes caps the size of an oracle response.
	MaximumOracleResponseBytes uint64
}

// NoFeePolicy returns a policy that charges nothing and enforces no
// limits. Useful for local networks and tests.
func NoFeePolicy() *ResourceControlPolicy {
	return &ResourceControlPolicy{
		MaximumWasmFuelPerBlock:         math.MaxUint64,
		MaximumEvmFuelPerBlock:          math.MaxUint64,
		MaximumServiceOracleExecutionMs: math.MaxUint64 / uint64(1e6),
		MaximumBlockSize:                math.MaxUint64,
		MaximumBlobSize:                 math.MaxUint64,
		MaximumBytesReadPerBlock:        math.MaxUint64,
		MaximumBytesWrittenPerBlock:     math.MaxUint64,
		MaximumOracleResponseBytes:      math.MaxUint64,
	}
}

// TestnetPolicy returns the schedule used on test networks: small nonzero
// prices for every category and generous but finite limits.
func TestnetPolicy() *ResourceControlPolicy {
	return &ResourceControlPolicy{
		WasmFuelUnit:         basics.Amount{Raw: 10},
		EvmFuelUnit:          basics.Amount{Raw: 1},
		ReadOperation:        basics.Amount{Raw: 50},
		WriteOperation:       basics.Amount{Raw: 100},
		ByteRead:             basics.Amount{Raw: 1},
		ByteWritten:          basics.Amount{Raw: 2},
		ByteRuntime:          basics.Amount{Raw: 1},
		Operation:            basics.Amount{Raw: 1000},
		OperationByte:        basics.Amount{Raw: 1},
		Message:              basics.Amount{Raw: 1000},
		MessageByte:          basics.Amount{Raw: 1},
		HTTPRequest:          basics.Amount{Raw: 5000},
		ServiceAsOracleQuery: basics.Amount{Raw: 5000},
		BlobRead:             basics.Amount{Raw: 100},
		BlobPublished:        basics.Amount{Raw: 1000},
		BlobByteRead:         basics.Amount{Raw: 1},
		BlobBytePublished:    basics.Amount{Raw: 10},

		MaximumWasmFuelPerBlock:         100_000_000,
		MaximumEvmFuelPerBlock:          30_000_000,
		MaximumServiceOracleExecutionMs: 10_000,
		MaximumBlockSize:                1_000_000,
		MaximumBlobSize:                 1_000_000,
		MaximumBytesReadPerBlock:        100_000_000,
		MaximumBytesWrittenPerBlock:     10_000_000,
		MaximumOracleResponseBytes:      10_000,
	}
}

// price multiplies a unit price by a quantity, checking for overflow.
func price(unit basics.Amount, count uint64) (basics.Amount, error) {
	total, overflowed := basics.OMul(unit.Raw, count)
	if overflowed {
		return basics.Amount{}, basics.ErrOverflow
	}
	return basics.Amount{Raw: total}, nil
}

// flatPlus adds a flat fee to a per-unit total, checking for overflow.
func flatPlus(flat basics.Amount, unit basics.Amount, count uint64) (basics.Amount, error) {
	total, err := price(unit, count)
	if err != nil {
		return basics.Amount{}, err
	}
	if err := total.TryAddAssign(flat); err != nil {
		return basics.Amount{}, err
	}
	return total, nil
}

// OperationBytesPrice prices the argument bytes of a user operation.
func (p *ResourceControlPolicy) OperationBytesPrice(size uint64) (basics.Amount, error) {
	return price(p.OperationByte, size)
}

// MessageBytesPrice prices the payload bytes of a user message.
func (p *ResourceControlPolicy) MessageBytesPrice(size uint64) (basics.Amount, error) {
	return price(p.MessageByte, size)
}

// BytesRuntimePrice prices bytes read through runtime calls.
func (p *ResourceControlPolicy) BytesRuntimePrice(size uint32) (basics.Amount, error) {
	return price(p.ByteRuntime, uint64(size))
}

// ReadOperationsPrice prices a number of read operations.
func (p *ResourceControlPolicy) ReadOperationsPrice(count uint32) (basics.Amount, error) {
	return price(p.ReadOperation, uint64(count))
}

// WriteOperationsPrice prices a number of write operations.
func (p *ResourceControlPolicy) WriteOperationsPrice(count uint32) (basics.Amount, error) {
	return price(p.WriteOperation, uint64(count))
}

// BytesReadPrice prices a number of bytes read from storage.
func (p *ResourceControlPolicy) BytesReadPrice(count uint64) (basics.Amount, error) {
	return price(p.ByteRead, count)
}

// BytesWrittenPrice prices a number of bytes written to storage.
func (p *ResourceControlPolicy) BytesWrittenPrice(count uint64) (basics.Amount, error) {
	return price(p.ByteWritten, count)
}

// BlobReadPrice prices reading one blob of the given size.
func (p *ResourceControlPolicy) BlobReadPrice(count uint64) (basics.Amount, error) {
	return flatPlus(p.BlobRead, p.BlobByteRead, count)
}

// BlobPublishedPrice prices publishing one blob of the given size.
func (p *ResourceControlPolicy) BlobPublishedPrice(size uint64) (basics.Amount, error) {
	return flatPlus(p.BlobPublished, p.BlobBytePublished, size)
}

// FuelUnit returns the fuel price of the given VM runtime.
func (p *ResourceControlPolicy) FuelUnit(vm VMRuntime) basics.Amount {
	if vm == VMEvm {
		return p.EvmFuelUnit
	}
	return p.WasmFuelUnit
}

// FuelPrice prices a number of fuel units for the given VM runtime.
func (p *ResourceControlPolicy) FuelPrice(fuel uint64, vm VMRuntime) (basics.Amount, error) {
	return price(p.FuelUnit(vm), fuel)
}

// MaximumFuelPerBlock returns the per-block fuel cap of the given VM
// runtime.
func (p *ResourceControlPolicy) MaximumFuelPerBlock(vm VMRuntime) uint64 {
	if vm == VMEvm {
		return p.MaximumEvmFuelPerBlock
	}
	return p.MaximumWasmFuelPerBlock
}

// RemainingFuel returns the fuel that could be bought by consuming the
// entire balance.
func (p *ResourceControlPolicy) RemainingFuel(balance basics.Amount, vm VMRuntime) uint64 {
	unit := p.FuelUnit(vm)
	if unit.IsZero() {
		return math.MaxUint64
	}
	return balance.Raw / unit.Raw
}

// CheckBlobSize validates a blob's content against the maximum blob size.
func (p *ResourceControlPolicy) CheckBlobSize(content []byte) error {
	if uint64(len(content)) > p.MaximumBlobSize {
		return BlobTooLargeError{Size: uint64(len(content)), Maximum: p.MaximumBlobSize}
	}
	return nil
}
