// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the handful of knobs the circuit-synthesis core
// actually has: the default BigInt bit-width and the logger level, loaded
// with viper the way a cobra-based CLI typically resolves config — an
// optional YAML file layered under environment-variable overrides.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultBitWidth is the BigInt width used when a caller doesn't specify
// one explicitly, matching the BN254 scalar field's bit length.
const DefaultBitWidth = 254

// DefaultLogLevel is used when no config file or environment override is
// present.
const DefaultLogLevel = "warn"

// Config is the resolved set of knobs for a circuitinfo run or an embedding
// service's startup.
type Config struct {
	BitWidth int    `mapstructure:"bitwidth"`
	LogLevel string `mapstructure:"loglevel"`
}

// Load resolves a Config from, in increasing priority: built-in defaults,
// an optional YAML file at path (ignored if empty or missing), and
// environment variables prefixed GSV_ (e.g. GSV_BITWIDTH, GSV_LOGLEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("bitwidth", DefaultBitWidth)
	v.SetDefault("loglevel", DefaultLogLevel)

	v.SetEnvPrefix("gsv")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
