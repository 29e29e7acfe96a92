// Copyright © 2024 Jose Figueredo
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josefigueredo/ableton-mcp-sub000/live"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that Live is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			version, err := gw.Version(ctx)
			if err != nil {
				// The connect probe already proved the peer is alive; older
				// AbletonOSC builds just don't answer the version query.
				version = "unknown"
			}
			fmt.Printf("connected (Live %s)\n", version)
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
