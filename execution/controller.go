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
	"time"

	"github.com/sasim081/linera-protocol/data/basics"
	"github.com/sasim081/linera-protocol/protocol"
)

// ResourceController meters resource consumption and charges the
// corresponding fees. Every Track method updates the tracker counters
// with overflow-checked arithmetic, enforces the applicable policy limit,
// and then debits the account. A controller has a single logical owner
// for the duration of one execution scope; it performs no internal
// synchronization.
//
// The counter update is not rolled back when the subsequent debit fails:
// callers must treat any error as terminal for the operation being
// tracked and discard the attempted work rather than retry.
type ResourceController struct {
	// policy is the (fixed) policy used to charge fees and control
	// resource usage.
	policy *ResourceControlPolicy
	// tracker records how the resources were used so far.
	tracker *ResourceTracker
	// account is paying for the resource usage.
	account BalanceHolder
}

// NewResourceController creates a controller with the given policy,
// tracker and paying account.
func NewResourceController(policy *ResourceControlPolicy, tracker *ResourceTracker, account BalanceHolder) *ResourceController {
	return &ResourceController{
		policy:  policy,
		tracker: tracker,
		account: account,
	}
}

// Policy returns the controller's policy.
func (c *ResourceController) Policy() *ResourceControlPolicy {
	return c.policy
}

// Tracker returns the controller's tracker.
func (c *ResourceController) Tracker() *ResourceTracker {
	return c.tracker
}

// Balance obtains the balance of the account. The only possible error is
// an arithmetic overflow, which should not happen in practice due to the
// finite token supply.
func (c *ResourceController) Balance() (basics.Amount, error) {
	return c.account.Balance()
}

// balanceOrMax is used when reporting a balance inside an error, where a
// summation overflow has no better representation than the maximum.
func (c *ResourceController) balanceOrMax() basics.Amount {
	balance, err := c.account.Balance()
	if err != nil {
		return basics.MaxAmount
	}
	return balance
}

// updateBalance subtracts fees from the account and reports a funding
// error if that is impossible.
func (c *ResourceController) updateBalance(fees basics.Amount) error {
	if err := c.account.TrySubAssign(fees); err != nil {
		return FeesExceedFundingError{Fees: fees, Balance: c.balanceOrMax()}
	}
	return nil
}

// MergeBalance operates a 3-way merge by transferring the difference
// between initial and other to the account: a decrease is charged as a
// fee, an increase is credited as a refund.
func (c *ResourceController) MergeBalance(initial, other basics.Amount) error {
	if other.LessOrEqual(initial) {
		fees, _ := basics.OSubA(initial, other)
		if err := c.account.TrySubAssign(fees); err != nil {
			return FeesExceedFundingError{Fees: fees, Balance: c.balanceOrMax()}
		}
		return nil
	}
	refund, _ := basics.OSubA(other, initial)
	return c.account.TryAddAssign(refund)
}

// RemainingFuel returns how much fuel the VM host may still grant before
// invocation: the minimum of the fuel purchasable with the current
// balance and the remaining budget under the per-block cap of this VM
// runtime. Does not mutate anything.
func (c *ResourceController) RemainingFuel(vm VMRuntime) uint64 {
	balance := c.balanceOrMax()
	fuel := c.tracker.fuel(vm)
	budget := basics.SubSaturate(c.policy.MaximumFuelPerBlock(vm), fuel)
	if purchasable := c.policy.RemainingFuel(balance, vm); purchasable < budget {
		return purchasable
	}
	return budget
}

// TrackGrant tracks the allocation of a grant, charging the grant amount
// immediately.
func (c *ResourceController) TrackGrant(grant basics.Amount) error {
	if err := c.tracker.Grants.TryAddAssign(grant); err != nil {
		return err
	}
	return c.updateBalance(grant)
}

// TrackOperation tracks the execution of an operation in a block. User
// operations are additionally charged per argument byte.
func (c *ResourceController) TrackOperation(operation Operation) error {
	var overflowed bool
	c.tracker.Operations, overflowed = basics.OAdd(c.tracker.Operations, 1)
	if overflowed {
		return basics.ErrOverflow
	}
	if err := c.updateBalance(c.policy.Operation); err != nil {
		return err
	}
	if operation.System {
		return nil
	}
	size := uint64(len(operation.Bytes))
	c.tracker.OperationBytes, overflowed = basics.OAdd(c.tracker.OperationBytes, size)
	if overflowed {
		return basics.ErrOverflow
	}
	fees, err := c.policy.OperationBytesPrice(size)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackMessage tracks the creation of an outgoing message. User messages
// are additionally charged per payload byte.
func (c *ResourceController) TrackMessage(message Message) error {
	var overflowed bool
	c.tracker.Messages, overflowed = basics.OAdd(c.tracker.Messages, 1)
	if overflowed {
		return basics.ErrOverflow
	}
	if err := c.updateBalance(c.policy.Message); err != nil {
		return err
	}
	if message.System {
		return nil
	}
	size := uint64(len(message.Bytes))
	c.tracker.MessageBytes, overflowed = basics.OAdd(c.tracker.MessageBytes, size)
	if overflowed {
		return basics.ErrOverflow
	}
	fees, err := c.policy.MessageBytesPrice(size)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackHTTPRequest tracks the execution of an HTTP request.
func (c *ResourceController) TrackHTTPRequest() error {
	var overflowed bool
	c.tracker.HTTPRequests, overflowed = basics.OAdd(c.tracker.HTTPRequests, 1)
	if overflowed {
		return basics.ErrOverflow
	}
	return c.updateBalance(c.policy.HTTPRequest)
}

// TrackFuel tracks a number of fuel units used by the given VM runtime.
// Each runtime has its own pool and its own per-block cap.
func (c *ResourceController) TrackFuel(fuel uint64, vm VMRuntime) error {
	var overflowed bool
	switch vm {
	case VMEvm:
		c.tracker.EvmFuel, overflowed = basics.OAdd(c.tracker.EvmFuel, fuel)
		if overflowed {
			return basics.ErrOverflow
		}
		if c.tracker.EvmFuel > c.policy.MaximumEvmFuelPerBlock {
			return MaximumFuelExceededError{VM: vm}
		}
	default:
		c.tracker.WasmFuel, overflowed = basics.OAdd(c.tracker.WasmFuel, fuel)
		if overflowed {
			return basics.ErrOverflow
		}
		if c.tracker.WasmFuel > c.policy.MaximumWasmFuelPerBlock {
			return MaximumFuelExceededError{VM: vm}
		}
	}
	fees, err := c.policy.FuelPrice(fuel, vm)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackRuntimeChainID tracks runtime reading of the chain id.
func (c *ResourceController) TrackRuntimeChainID() error {
	return c.trackRuntimeBytes(RuntimeChainIDSize)
}

// TrackRuntimeBlockHeight tracks runtime reading of the block height.
func (c *ResourceController) TrackRuntimeBlockHeight() error {
	return c.trackRuntimeBytes(RuntimeBlockHeightSize)
}

// TrackRuntimeApplicationID tracks runtime reading of the application id.
func (c *ResourceController) TrackRuntimeApplicationID() error {
	return c.trackRuntimeBytes(RuntimeApplicationIDSize)
}

// TrackRuntimeApplicationParameters tracks runtime reading of the
// application parameters.
func (c *ResourceController) TrackRuntimeApplicationParameters(parameters []byte) error {
	return c.trackRuntimeBytes(uint32(len(parameters)))
}

// TrackRuntimeTimestamp tracks runtime reading of the timestamp.
func (c *ResourceController) TrackRuntimeTimestamp() error {
	return c.trackRuntimeBytes(RuntimeTimestampSize)
}

// TrackRuntimeBalance tracks runtime reading of the chain balance.
func (c *ResourceController) TrackRuntimeBalance() error {
	return c.trackRuntimeBytes(RuntimeAmountSize)
}

// OwnerBalance pairs an owner with a balance for runtime reads.
type OwnerBalance struct {
	Owner   basics.AccountOwner
	Balance basics.Amount
}

// TrackRuntimeOwnerBalances tracks runtime reading of all owner balances.
func (c *ResourceController) TrackRuntimeOwnerBalances(ownerBalances []OwnerBalance) error {
	size := uint32(0)
	for _, entry := range ownerBalances {
		size += uint32(entry.Owner.Size()) + RuntimeAmountSize
	}
	return c.trackRuntimeBytes(size)
}

// TrackRuntimeOwners tracks runtime reading of the owner list.
func (c *ResourceController) TrackRuntimeOwners(owners []basics.AccountOwner) error {
	size := uint32(0)
	for _, owner := range owners {
		size += uint32(owner.Size())
	}
	return c.trackRuntimeBytes(size)
}

// TrackRuntimeChainOwnership tracks runtime reading of the chain
// ownership structure.
func (c *ResourceController) TrackRuntimeChainOwnership(ownership ChainOwnership) error {
	size := RuntimeConstantChainOwnershipSize
	for _, owner := range ownership.SuperOwners {
		size += uint32(owner.Size())
	}
	for owner := range ownership.Owners {
		size += uint32(owner.Size()) + RuntimeOwnerWeightSize
	}
	return c.trackRuntimeBytes(size)
}

// trackRuntimeBytes tracks and charges bytes read through runtime calls.
func (c *ResourceController) trackRuntimeBytes(size uint32) error {
	var overflowed bool
	c.tracker.BytesRuntime, overflowed = basics.OAdd(c.tracker.BytesRuntime, size)
	if overflowed {
		return basics.ErrOverflow
	}
	fees, err := c.policy.BytesRuntimePrice(size)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackReadOperation tracks one read operation.
func (c *ResourceController) TrackReadOperation() error {
	var overflowed bool
	c.tracker.ReadOperations, overflowed = basics.OAdd(c.tracker.ReadOperations, 1)
	if overflowed {
		return basics.ErrOverflow
	}
	fees, err := c.policy.ReadOperationsPrice(1)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackWriteOperations tracks a batch of write operations.
func (c *ResourceController) TrackWriteOperations(count uint32) error {
	var overflowed bool
	c.tracker.WriteOperations, overflowed = basics.OAdd(c.tracker.WriteOperations, count)
	if overflowed {
		return basics.ErrOverflow
	}
	fees, err := c.policy.WriteOperationsPrice(count)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackBytesRead tracks a number of bytes read from storage. The call
// fails with ErrExcessiveRead as soon as the running total reaches the
// per-block limit.
func (c *ResourceController) TrackBytesRead(count uint64) error {
	var overflowed bool
	c.tracker.BytesRead, overflowed = basics.OAdd(c.tracker.BytesRead, count)
	if overflowed {
		return basics.ErrOverflow
	}
	if c.tracker.BytesRead >= c.policy.MaximumBytesReadPerBlock {
		return ErrExcessiveRead
	}
	fees, err := c.policy.BytesReadPrice(count)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackBytesWritten tracks a number of bytes written to storage. The call
// fails with ErrExcessiveWrite as soon as the running total reaches the
// per-block limit.
func (c *ResourceController) TrackBytesWritten(count uint64) error {
	var overflowed bool
	c.tracker.BytesWritten, overflowed = basics.OAdd(c.tracker.BytesWritten, count)
	if overflowed {
		return basics.ErrOverflow
	}
	if c.tracker.BytesWritten >= c.policy.MaximumBytesWrittenPerBlock {
		return ErrExcessiveWrite
	}
	fees, err := c.policy.BytesWrittenPrice(count)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackBlobRead tracks reading one blob of count bytes.
func (c *ResourceController) TrackBlobRead(count uint64) error {
	var overflowed bool
	c.tracker.BlobBytesRead, overflowed = basics.OAdd(c.tracker.BlobBytesRead, count)
	if overflowed {
		return basics.ErrOverflow
	}
	c.tracker.BlobsRead, overflowed = basics.OAdd(c.tracker.BlobsRead, 1)
	if overflowed {
		return basics.ErrOverflow
	}
	fees, err := c.policy.BlobReadPrice(count)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackBlobPublished tracks publishing a blob. The size limit applies to
// every blob, but committee blobs are otherwise exempt: nothing is
// counted and nothing is charged for them.
func (c *ResourceController) TrackBlobPublished(blob Blob) error {
	if err := c.policy.CheckBlobSize(blob.Content); err != nil {
		return err
	}
	if blob.IsCommitteeBlob() {
		return nil
	}
	size := uint64(len(blob.Content))
	var overflowed bool
	c.tracker.BlobBytesPublished, overflowed = basics.OAdd(c.tracker.BlobBytesPublished, size)
	if overflowed {
		return basics.ErrOverflow
	}
	c.tracker.BlobsPublished, overflowed = basics.OAdd(c.tracker.BlobsPublished, 1)
	if overflowed {
		return basics.ErrOverflow
	}
	fees, err := c.policy.BlobPublishedPrice(size)
	if err != nil {
		return err
	}
	return c.updateBalance(fees)
}

// TrackStoredBytes tracks a change in the number of bytes stored by user
// applications. The delta may be negative; storage is tracked but not
// currently priced.
func (c *ResourceController) TrackStoredBytes(delta int32) error {
	var overflowed bool
	c.tracker.BytesStored, overflowed = basics.OAddS(c.tracker.BytesStored, delta)
	if overflowed {
		return basics.ErrOverflow
	}
	return nil
}

// TrackServiceOracleCall tracks a call to a service running as an oracle.
func (c *ResourceController) TrackServiceOracleCall() error {
	var overflowed bool
	c.tracker.ServiceOracleQueries, overflowed = basics.OAdd(c.tracker.ServiceOracleQueries, 1)
	if overflowed {
		return basics.ErrOverflow
	}
	return c.updateBalance(c.policy.ServiceAsOracleQuery)
}

// serviceOracleExecutionLimit returns the configured execution time
// limit. The millisecond-to-Duration conversion saturates, so a huge
// configured limit means "effectively unlimited" rather than wrapping
// negative.
func (c *ResourceController) serviceOracleExecutionLimit() time.Duration {
	ns := basics.MulSaturate(c.policy.MaximumServiceOracleExecutionMs, uint64(time.Millisecond))
	if ns > math.MaxInt64 {
		ns = math.MaxInt64
	}
	return time.Duration(ns)
}

// TrackServiceOracleExecution tracks the time spent executing a service
// as an oracle. The cumulative total must stay strictly below the limit.
func (c *ResourceController) TrackServiceOracleExecution(executionTime time.Duration) error {
	spent := c.tracker.ServiceOracleExecution + executionTime
	if spent < c.tracker.ServiceOracleExecution {
		spent = time.Duration(math.MaxInt64)
	}
	c.tracker.ServiceOracleExecution = spent
	if spent >= c.serviceOracleExecutionLimit() {
		return ErrServiceOracleExecutionTimeExceeded
	}
	return nil
}

// RemainingServiceOracleExecutionTime returns the time services may still
// spend executing as oracles.
func (c *ResourceController) RemainingServiceOracleExecutionTime() (time.Duration, error) {
	spent := c.tracker.ServiceOracleExecution
	limit := c.serviceOracleExecutionLimit()
	if spent > limit {
		return 0, ErrServiceOracleExecutionTimeExceeded
	}
	return limit - spent, nil
}

// TrackServiceOracleResponse validates the size of a response produced by
// an oracle. No counter is mutated.
func (c *ResourceController) TrackServiceOracleResponse(responseBytes int) error {
	if uint64(responseBytes) > c.policy.MaximumOracleResponseBytes {
		return ErrServiceOracleResponseTooLarge
	}
	return nil
}

// TrackBlockSize tracks the serialized size of a block, or parts of it.
// No fee is charged beyond the limit check.
func (c *ResourceController) TrackBlockSize(size int) error {
	if size < 0 {
		return ErrBlockTooLarge
	}
	total, overflowed := basics.OAdd(c.tracker.BlockSize, uint64(size))
	if overflowed {
		return ErrBlockTooLarge
	}
	c.tracker.BlockSize = total
	if total > c.policy.MaximumBlockSize {
		return ErrBlockTooLarge
	}
	return nil
}

// TrackBlockSizeOf tracks the canonical serialized size of obj as part of
// the block.
func (c *ResourceController) TrackBlockSizeOf(obj interface{}) error {
	return c.TrackBlockSize(protocol.EncodedLen(obj))
}
