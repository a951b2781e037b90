// Copyright 2020 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/sboehler/atm/cmd/balance"
	"github.com/sboehler/atm/cmd/generate"
	"github.com/sboehler/atm/cmd/minima"
	"github.com/sboehler/atm/cmd/replay"

	"github.com/spf13/cobra"
)

// CreateCmd creates the root command with all subcommands.
func CreateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "atm",
		Short: "atm is a dated transaction ledger",
		Long: `atm records deposits, withdrawals and balance inquiries on arbitrary dates,
and warns when a withdrawal would overdraw the account on some later date.`,
	}
	c.AddCommand(replay.CreateCmd())
	c.AddCommand(balance.CreateCmd())
	c.AddCommand(minima.CreateCmd())
	c.AddCommand(generate.CreateCmd())
	return c
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	c := CreateCmd()
	if err := c.Execute(); err != nil {
		fmt.Fprint(c.ErrOrStderr(), err)
		os.Exit(1)
	}
}
