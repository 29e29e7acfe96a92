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
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/josefigueredo/ableton-mcp-sub000/live"
)

// clipCmd represents the clip command
var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Inspect and control session clips",
}

var clipFireCmd = &cobra.Command{
	Use:   "fire <track> <scene>",
	Short: "Launch a clip",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, scene, err := parseSlot(args)
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.FireClip(track, scene)
		})
	},
}

var clipStopCmd = &cobra.Command{
	Use:   "stop <track> <scene>",
	Short: "Stop a clip",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, scene, err := parseSlot(args)
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.StopClip(track, scene)
		})
	},
}

var clipCreateCmd = &cobra.Command{
	Use:   "create <track> <scene> <beats>",
	Short: "Create an empty MIDI clip",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, scene, err := parseSlot(args)
		if err != nil {
			return err
		}
		length, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return errors.Wrapf(err, "parsing length %q", args[2])
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.CreateClip(track, scene, length)
		})
	},
}

var clipNotesCmd = &cobra.Command{
	Use:   "notes <track> <scene>",
	Short: "Print the MIDI notes of a clip",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, scene, err := parseSlot(args)
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			notes, err := gw.Notes(ctx, track, scene)
			if err != nil {
				return err
			}
			for _, n := range notes {
				fmt.Printf("pitch=%3d start=%-7.3f dur=%-7.3f vel=%3d mute=%v\n",
					n.Pitch, n.Start, n.Duration, n.Velocity, n.Mute)
			}
			return nil
		})
	},
}

func parseSlot(args []string) (track, scene int, err error) {
	if track, err = parseIndex(args[0]); err != nil {
		return 0, 0, err
	}
	if scene, err = parseIndex(args[1]); err != nil {
		return 0, 0, err
	}
	return track, scene, nil
}

func init() {
	clipCmd.AddCommand(clipFireCmd, clipStopCmd, clipCreateCmd, clipNotesCmd)
	RootCmd.AddCommand(clipCmd)
}
