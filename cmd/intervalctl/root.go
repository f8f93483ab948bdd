// Copyright 2024 The Skyschermer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"github.com/spf13/cobra"

	"github.com/skyschermer/interval-go/golibs/logging"
)

var verbose bool

// newRootCmd assembles the intervalctl command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intervalctl",
		Short: "Evaluate interval set expressions",
		Long: `intervalctl parses and evaluates set expressions over integer
intervals, printing the resulting selection in canonical interval notation.`,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logging.SetLevel(logging.DEBUG)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the parsed expression and each result interval")
	cmd.AddCommand(newEvalCmd())
	return cmd
}
