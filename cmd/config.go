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
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config is the effective connection configuration: defaults, overridden by
// the YAML file when --config is given, overridden by explicitly set flags.
type Config struct {
	Host        string
	SendPort    int
	ReceivePort int
	Timeout     time.Duration
}

// fileConfig is the YAML shape; the timeout is a duration string like "5s".
type fileConfig struct {
	Host        string `yaml:"host"`
	SendPort    int    `yaml:"send_port"`
	ReceivePort int    `yaml:"receive_port"`
	Timeout     string `yaml:"timeout"`
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	cfg := Config{
		Host:        flagHost,
		SendPort:    flagSendPort,
		ReceivePort: flagReceivePort,
		Timeout:     flagTimeout,
	}
	if flagConfig == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(flagConfig)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", flagConfig)
	}

	flags := cmd.Flags()
	if file.Host != "" && !flags.Changed("host") {
		cfg.Host = file.Host
	}
	if file.SendPort != 0 && !flags.Changed("send-port") {
		cfg.SendPort = file.SendPort
	}
	if file.ReceivePort != 0 && !flags.Changed("receive-port") {
		cfg.ReceivePort = file.ReceivePort
	}
	if file.Timeout != "" && !flags.Changed("timeout") {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing timeout %q", file.Timeout)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}
