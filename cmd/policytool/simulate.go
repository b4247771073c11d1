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

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sasim081/linera-protocol/data/basics"
	"github.com/sasim081/linera-protocol/execution"
)

var (
	simBalance    uint64
	simOperations uint64
	simMessages   uint64
	simPayload    uint64
	simFuel       uint64
)

func init() {
	simulateCmd.Flags().Uint64Var(&simBalance, "balance", 1_000_000_000, "Initial chain balance")
	simulateCmd.Flags().Uint64Var(&simOperations, "operations", 10, "Number of user operations")
	simulateCmd.Flags().Uint64Var(&simMessages, "messages", 10, "Number of user messages")
	simulateCmd.Flags().Uint64Var(&simPayload, "payload", 64, "Payload size per operation/message, in bytes")
	simulateCmd.Flags().Uint64Var(&simFuel, "fuel", 1000, "Wasm fuel per operation")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a synthetic workload and report counters and fees",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		policy, err := loadPolicy()
		if err != nil {
			reportErrorf("%v", err)
		}

		ctx := context.Background()
		view := execution.NewSystemExecutionStateView(nil)
		view.Balance = basics.Amount{Raw: simBalance}
		controller := execution.NewBlockController(policy, nil)
		payload := make([]byte, simPayload)
		var appID basics.ApplicationID
		appID[0] = 1

		rc, err := controller.WithState(ctx, view)
		if err != nil {
			reportErrorf("%v", err)
		}
		for i := uint64(0); i < simOperations; i++ {
			if err := rc.TrackOperation(execution.UserOperation(appID, payload)); err != nil {
				reportErrorf("operation %d: %v", i, err)
			}
			if err := rc.TrackFuel(simFuel, execution.VMWasm); err != nil {
				reportErrorf("operation %d: %v", i, err)
			}
		}
		for i := uint64(0); i < simMessages; i++ {
			if err := rc.TrackMessage(execution.UserMessage(appID, payload)); err != nil {
				reportErrorf("message %d: %v", i, err)
			}
		}

		tracker := &controller.Tracker
		fmt.Printf("operations:      %d (%d bytes)\n", tracker.Operations, tracker.OperationBytes)
		fmt.Printf("messages:        %d (%d bytes)\n", tracker.Messages, tracker.MessageBytes)
		fmt.Printf("wasm fuel:       %d\n", tracker.WasmFuel)
		fmt.Printf("fees charged:    %d\n", simBalance-view.Balance.Raw)
		fmt.Printf("final balance:   %v\n", view.Balance)
	},
}
