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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Print the fee schedule and limits of a policy",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		policy, err := loadPolicy()
		if err != nil {
			reportErrorf("%v", err)
		}
		out, err := json.MarshalIndent(policy, "", "  ")
		if err != nil {
			reportErrorf("%v", err)
		}
		fmt.Println(string(out))
	},
}
