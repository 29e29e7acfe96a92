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

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Inspect and control tracks",
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List track names and mix state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			n, err := gw.NumTracks(ctx)
			if err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				name, err := gw.TrackName(ctx, i)
				if err != nil {
					return err
				}
				volume, err := gw.TrackVolume(ctx, i)
				if err != nil {
					return err
				}
				pan, err := gw.TrackPan(ctx, i)
				if err != nil {
					return err
				}
				fmt.Printf("%2d  %-24s vol=%.2f pan=%+.2f\n", i, name, volume, pan)
			}
			return nil
		})
	},
}

var trackAddCmd = &cobra.Command{
	Use:   "add (midi|audio)",
	Short: "Append a new track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			switch args[0] {
			case "midi":
				return gw.CreateMIDITrack(-1)
			case "audio":
				return gw.CreateAudioTrack(-1)
			default:
				return errors.Errorf("unknown track kind %q", args[0])
			}
		})
	},
}

var trackVolumeCmd = &cobra.Command{
	Use:   "volume <track> [0..1]",
	Short: "Read or set a track's volume",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			if len(args) == 1 {
				volume, err := gw.TrackVolume(ctx, track)
				if err != nil {
					return err
				}
				fmt.Printf("%.3f\n", volume)
				return nil
			}
			volume, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrapf(err, "parsing volume %q", args[1])
			}
			return gw.SetTrackVolume(track, volume)
		})
	},
}

var trackPanCmd = &cobra.Command{
	Use:   "pan <track> [-1..1]",
	Short: "Read or set a track's panning",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			if len(args) == 1 {
				pan, err := gw.TrackPan(ctx, track)
				if err != nil {
					return err
				}
				fmt.Printf("%+.3f\n", pan)
				return nil
			}
			pan, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrapf(err, "parsing pan %q", args[1])
			}
			return gw.SetTrackPan(track, pan)
		})
	},
}

var trackMuteCmd = &cobra.Command{
	Use:   "mute <track> (on|off)",
	Short: "Mute or unmute a track",
	Args:  cobra.ExactArgs(2),
	RunE:  trackFlagRunE(func(gw *live.Gateway, track int, on bool) error { return gw.SetTrackMute(track, on) }),
}

var trackSoloCmd = &cobra.Command{
	Use:   "solo <track> (on|off)",
	Short: "Solo or unsolo a track",
	Args:  cobra.ExactArgs(2),
	RunE:  trackFlagRunE(func(gw *live.Gateway, track int, on bool) error { return gw.SetTrackSolo(track, on) }),
}

var trackArmCmd = &cobra.Command{
	Use:   "arm <track> (on|off)",
	Short: "Arm or disarm a track",
	Args:  cobra.ExactArgs(2),
	RunE:  trackFlagRunE(func(gw *live.Gateway, track int, on bool) error { return gw.SetTrackArm(track, on) }),
}

var trackDeleteCmd = &cobra.Command{
	Use:   "delete <track>",
	Short: "Delete a track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.DeleteTrack(track)
		})
	},
}

func trackFlagRunE(set func(gw *live.Gateway, track int, on bool) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		track, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return set(gw, track, args[1] == "on")
		})
	}
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing index %q", s)
	}
	return n, nil
}

func init() {
	trackCmd.AddCommand(trackListCmd, trackAddCmd, trackVolumeCmd, trackPanCmd,
		trackMuteCmd, trackSoloCmd, trackArmCmd, trackDeleteCmd)
	RootCmd.AddCommand(trackCmd)
}
