// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"bytes"
	"os"
	"path/filepath"

	"code.vegaprotocol.io/credit/core/accounts"
	"code.vegaprotocol.io/credit/core/credit"
	"code.vegaprotocol.io/credit/core/health"
	"code.vegaprotocol.io/credit/core/liquidation"
	"code.vegaprotocol.io/credit/metrics"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configFileName = "config.toml"

// Config ties together the configuration of every engine in the node.
type Config struct {
	Accounts    accounts.Config    `group:"Accounts" namespace:"accounts"`
	Credit      credit.Config      `group:"Credit" namespace:"credit"`
	Health      health.Config      `group:"Health" namespace:"health"`
	Liquidation liquidation.Config `group:"Liquidation" namespace:"liquidation"`
	Metrics     metrics.Config     `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns the per package defaults assembled into a single
// root configuration.
func NewDefaultConfig() Config {
	return Config{
		Accounts:    accounts.NewDefaultConfig(),
		Credit:      credit.NewDefaultConfig(),
		Health:      health.NewDefaultConfig(),
		Liquidation: liquidation.NewDefaultConfig(),
		Metrics:     metrics.NewDefaultConfig(),
	}
}

// Read loads the configuration file from the given directory on top of the
// defaults, so a partial file only overrides what it names.
func Read(dirPath string) (Config, error) {
	cfg := NewDefaultConfig()
	path := filepath.Join(dirPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

// Write serialises the configuration into the given directory, creating it
// if needed.
func Write(dirPath string, cfg Config) error {
	if err := os.MkdirAll(dirPath, 0o700); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	buf := bytes.Buffer{}
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
