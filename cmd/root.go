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
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/josefigueredo/ableton-mcp-sub000/correlate"
	"github.com/josefigueredo/ableton-mcp-sub000/live"
	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
	"github.com/josefigueredo/ableton-mcp-sub000/transport"
)

var (
	flagHost        string
	flagSendPort    int
	flagReceivePort int
	flagTimeout     time.Duration
	flagConfig      string
	flagVerbose     bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "livectl",
	Short:         "Control Ableton Live over OSC",
	Long:          `livectl talks to a running Ableton Live instance through AbletonOSC.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&flagHost, "host", liveosc.DefaultHost, "host Live is running on")
	flags.IntVar(&flagSendPort, "send-port", liveosc.DefaultSendPort, "port Live listens for commands on")
	flags.IntVar(&flagReceivePort, "receive-port", liveosc.DefaultReceivePort, "local port Live sends replies to")
	flags.DurationVar(&flagTimeout, "timeout", live.DefaultTimeout, "reply timeout for queries")
	flags.StringVar(&flagConfig, "config", "", "path to a YAML config file")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// withGateway connects a gateway from the effective config, runs fn, and
// disconnects.
func withGateway(cmd *cobra.Command, fn func(ctx context.Context, gw *live.Gateway) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()
	gw := live.New(
		transport.New(transport.WithLogger(logger)),
		correlate.New(),
		live.WithTimeout(cfg.Timeout),
		live.WithLogger(logger),
	)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := gw.Connect(ctx, transport.Config{
		Host:        cfg.Host,
		SendPort:    cfg.SendPort,
		ReceivePort: cfg.ReceivePort,
	}); err != nil {
		return err
	}
	defer gw.Disconnect()
	return fn(ctx, gw)
}
