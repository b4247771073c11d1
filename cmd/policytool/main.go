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

// policytool inspects resource control policies and simulates the fees a
// workload would pay under them.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sasim081/linera-protocol/execution"
)

var policyFile string

var rootCmd = &cobra.Command{
	Use:   "policytool",
	Short: "CLI for inspecting resource control policies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&policyFile, "policy", "p", "", "JSON policy file (default: the testnet policy)")
	rootCmd.AddCommand(feesCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadPolicy reads the policy file, or returns the testnet schedule when
// no file is given.
func loadPolicy() (*execution.ResourceControlPolicy, error) {
	if policyFile == "" {
		return execution.TestnetPolicy(), nil
	}
	data, err := os.ReadFile(policyFile)
	if err != nil {
		return nil, err
	}
	policy := execution.NoFeePolicy()
	if err := json.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", policyFile, err)
	}
	return policy, nil
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
