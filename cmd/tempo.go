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

// tempoCmd represents the tempo command
var tempoCmd = &cobra.Command{
	Use:   "tempo [bpm]",
	Short: "Read or set the song tempo",
	Long:  `With no argument, print the current tempo. With a BPM argument, set it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGateway(cmd, func(ctx context.Context, gw *live.Gateway) error {
			if len(args) == 0 {
				tempo, err := gw.Tempo(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%.2f\n", tempo)
				return nil
			}
			bpm, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "parsing tempo %q", args[0])
			}
			return gw.SetTempo(bpm)
		})
	},
}

func init() {
	RootCmd.AddCommand(tempoCmd)
}
