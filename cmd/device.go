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

// deviceCmd represents the device command
var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Inspect track devices",
}

var deviceListCmd = &cobra.Command{
	Use:   "list <track>",
	Short: "List the devices on a track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			n, err := gw.NumDevices(ctx, track)
			if err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				name, err := gw.DeviceName(ctx, track, i)
				if err != nil {
					return err
				}
				fmt.Printf("%2d  %s\n", i, name)
			}
			return nil
		})
	},
}

var deviceParamsCmd = &cobra.Command{
	Use:   "params <track> <device>",
	Short: "List a device's parameters",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		device, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			params, err := gw.DeviceParameters(ctx, track, device)
			if err != nil {
				return err
			}
			for _, p := range params {
				fmt.Printf("%3d  %-28s %8.3f  [%g, %g]\n", p.ID, p.Name, p.Value, p.Min, p.Max)
			}
			return nil
		})
	},
}

func init() {
	deviceCmd.AddCommand(deviceListCmd, deviceParamsCmd)
	RootCmd.AddCommand(deviceCmd)
}
