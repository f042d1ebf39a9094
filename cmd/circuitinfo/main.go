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

// Command circuitinfo builds a named circuit-synthesis operation via the
// registry, evaluates it, and reports its gate-kind histogram and
// fingerprint — a one-shot diagnostic rather than a long-running service.
package main

import (
	"fmt"
	"sort"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chainwayxyz/garbled-snark-verifier/circuit"
	"github.com/chainwayxyz/garbled-snark-verifier/circuit/eval"
	gsvconfig "github.com/chainwayxyz/garbled-snark-verifier/config"
	"github.com/chainwayxyz/garbled-snark-verifier/internal/obs"
	"github.com/chainwayxyz/garbled-snark-verifier/registry"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "circuitinfo <operation>",
	Short: "Synthesize a named circuit operation and print its gate histogram",
	Long: `circuitinfo builds one of the library's named operations (see
"circuitinfo list") against freshly sampled random operands, evaluates it,
and reports the resulting gate-kind histogram and fingerprint. It never
touches a network or a disk beyond an optional config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		configFile = viper.GetString("config")

		cfg, err := gsvconfig.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		obs.SetLogger(log.New("component", "circuitinfo", "bitwidth", cfg.BitWidth))

		return run(args[0])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the named operations circuitinfo knows how to build",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := registry.Names()
		sort.Strings(names)
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("config", "", "optional YAML config file path")
	rootCmd.AddCommand(listCmd)
}

func run(name string) error {
	c, err := registry.Build(name)
	if err != nil {
		return err
	}
	if err := eval.Run(c); err != nil {
		return fmt.Errorf("evaluate %s: %w", name, err)
	}

	fmt.Printf("operation:    %s\n", name)
	fmt.Printf("gate count:   %d\n", len(c.Gates))
	fmt.Printf("output wires: %d\n", len(c.Outputs))
	fmt.Printf("fingerprint:  %x\n", c.Fingerprint())

	counts := c.GateTypeCounts()
	kinds := make([]circuit.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Printf("  %-6s %d\n", k, counts[k])
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Crit("circuitinfo failed", "err", err)
	}
}
