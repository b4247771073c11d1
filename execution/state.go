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
	"context"

	"github.com/sasim081/linera-protocol/data/basics"
	"github.com/sasim081/linera-protocol/logging"
)

// BalanceStore is persistent storage for per-owner balances. Lookups may
// require I/O, so they take a context.
type BalanceStore interface {
	// OwnerBalance returns the stored balance of owner, and whether the
	// owner has an entry at all.
	OwnerBalance(ctx context.Context, owner basics.AccountOwner) (basics.Amount, bool, error)

	// SetOwnerBalance stores the balance of owner.
	SetOwnerBalance(ctx context.Context, owner basics.AccountOwner, balance basics.Amount) error
}

// SystemExecutionStateView is the mutable view of the execution state a
// controller charges against: the chain's own balance plus a cache of
// per-owner balances loaded from a BalanceStore. The transient controller
// returned by WithStateAndGrant holds references into this view, so the
// view must not be used elsewhere until that controller is dropped.
type SystemExecutionStateView struct {
	log logging.Logger

	// Balance is the chain's own balance.
	Balance basics.Amount

	store  BalanceStore
	loaded map[basics.AccountOwner]*basics.Amount
}

// NewSystemExecutionStateView creates a view over store. A nil store
// yields a purely in-memory view, useful for tests and simulation.
func NewSystemExecutionStateView(store BalanceStore) *SystemExecutionStateView {
	return &SystemExecutionStateView{
		log:    logging.Base(),
		store:  store,
		loaded: make(map[basics.AccountOwner]*basics.Amount),
	}
}

// SetOwnerBalance records an owner balance in the view, without touching
// the store until the next Flush.
func (v *SystemExecutionStateView) SetOwnerBalance(owner basics.AccountOwner, balance basics.Amount) {
	amount := balance
	v.loaded[owner] = &amount
}

// OwnerBalanceMut returns a mutable reference to the owner's balance
// entry, loading it from the store on first access. The second return
// value reports whether the owner has an entry at all. This is the single
// suspension point of the metering core.
func (v *SystemExecutionStateView) OwnerBalanceMut(ctx context.Context, owner basics.AccountOwner) (*basics.Amount, bool, error) {
	if amount, ok := v.loaded[owner]; ok {
		return amount, true, nil
	}
	if v.store == nil {
		return nil, false, nil
	}
	balance, ok, err := v.store.OwnerBalance(ctx, owner)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	amount := balance
	v.loaded[owner] = &amount
	v.log.With("owner", owner.String()).Debugf("loaded owner balance %v", balance)
	return &amount, true, nil
}

// OwnerBalance returns the owner's balance, if any, without retaining a
// mutable reference.
func (v *SystemExecutionStateView) OwnerBalance(ctx context.Context, owner basics.AccountOwner) (basics.Amount, bool, error) {
	amount, ok, err := v.OwnerBalanceMut(ctx, owner)
	if err != nil || !ok {
		return basics.Amount{}, ok, err
	}
	return *amount, true, nil
}

// Flush writes the loaded owner balances back to the store.
func (v *SystemExecutionStateView) Flush(ctx context.Context) error {
	if v.store == nil {
		return nil
	}
	for owner, amount := range v.loaded {
		if err := v.store.SetOwnerBalance(ctx, owner, *amount); err != nil {
			return err
		}
	}
	return nil
}

// BlockController accumulates resource usage across one block and carries
// the identity of the paying owner, if any. Charging requires borrowing a
// transient ResourceController via WithState or WithStateAndGrant; the
// transient controller shares this controller's tracker.
type BlockController struct {
	policy *ResourceControlPolicy

	// Tracker records the resources used by the whole block so far.
	Tracker ResourceTracker

	// Owner optionally identifies the account paying for the block. When
	// set and funded, it serves as the fallback funding source.
	Owner *basics.AccountOwner
}

// NewBlockController creates a block-scope controller. owner may be nil.
func NewBlockController(policy *ResourceControlPolicy, owner *basics.AccountOwner) *BlockController {
	return &BlockController{policy: policy, Owner: owner}
}

// Policy returns the controller's policy.
func (c *BlockController) Policy() *ResourceControlPolicy {
	return c.policy
}

// TrackBlockSize tracks the serialized size of a block, or parts of it.
func (c *BlockController) TrackBlockSize(size int) error {
	rc := ResourceController{policy: c.policy, tracker: &c.Tracker}
	return rc.TrackBlockSize(size)
}

// TrackBlockSizeOf tracks the canonical serialized size of obj as part of
// the block.
func (c *BlockController) TrackBlockSizeOf(obj interface{}) error {
	rc := ResourceController{policy: c.policy, tracker: &c.Tracker}
	return rc.TrackBlockSizeOf(obj)
}

// WithState borrows a transient controller charging the chain balance,
// with fallback to the paying owner's account.
func (c *BlockController) WithState(ctx context.Context, view *SystemExecutionStateView) (*ResourceController, error) {
	return c.WithStateAndGrant(ctx, view, nil)
}

// WithStateAndGrant borrows a transient controller whose funding sources
// are, in priority order: the grant when one is supplied (messages),
// otherwise the chain balance (blocks and operations); then the paying
// owner's account, if the owner is known and has a balance entry. This is
// the single place where the funding priority list is assembled.
func (c *BlockController) WithStateAndGrant(ctx context.Context, view *SystemExecutionStateView, grant *basics.Amount) (*ResourceController, error) {
	sources := make([]*basics.Amount, 0, 2)
	if grant != nil {
		sources = append(sources, grant)
	} else {
		sources = append(sources, &view.Balance)
	}
	// Any negative fee (e.g. a storage refund) goes preferably to the
	// owner account, which is appended last.
	if c.Owner != nil {
		balance, ok, err := view.OwnerBalanceMut(ctx, *c.Owner)
		if err != nil {
			return nil, err
		}
		if ok {
			sources = append(sources, balance)
		}
	}
	return &ResourceController{
		policy:  c.policy,
		tracker: &c.Tracker,
		account: &Sources{sources: sources},
	}, nil
}
