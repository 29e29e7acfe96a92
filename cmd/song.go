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

// songCmd represents the song command
var songCmd = &cobra.Command{
	Use:   "song",
	Short: "Song transport and structure",
}

var songPlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Start playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.StartPlayback()
		})
	},
}

var songStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.StopPlayback()
		})
	},
}

var songContinueCmd = &cobra.Command{
	Use:   "continue",
	Short: "Continue playback from the current position",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.ContinuePlaying()
		})
	},
}

var songStopClipsCmd = &cobra.Command{
	Use:   "stop-clips",
	Short: "Stop all playing clips",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.StopAllClips()
		})
	},
}

var songMetronomeCmd = &cobra.Command{
	Use:   "metronome (on|off)",
	Short: "Enable or disable the metronome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			return gw.SetMetronome(args[0] == "on")
		})
	},
}

var songInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print song state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			tempo, err := gw.Tempo(ctx)
			if err != nil {
				return err
			}
			playing, err := gw.IsPlaying(ctx)
			if err != nil {
				return err
			}
			tracks, err := gw.NumTracks(ctx)
			if err != nil {
				return err
			}
			scenes, err := gw.NumScenes(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("tempo:   %.2f\nplaying: %v\ntracks:  %d\nscenes:  %d\n",
				tempo, playing, tracks, scenes)
			return nil
		})
	},
}

func init() {
	songCmd.AddCommand(songPlayCmd, songStopCmd, songContinueCmd, songStopClipsCmd, songMetronomeCmd, songInfoCmd)
	RootCmd.AddCommand(songCmd)
}
