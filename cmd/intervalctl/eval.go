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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyschermer/interval-go/golibs/logging"
	"github.com/skyschermer/interval-go/pkg/intervalql"
	"github.com/skyschermer/interval-go/pkg/intervals"
)

var evalLog = logging.NewLogger("intervalctl/eval")

// newEvalCmd builds the "eval" subcommand.
func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a set expression and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			evalLog.Debugf("parsing expression %q", expr)
			ast, err := intervalql.Parse(expr)
			if err != nil {
				return err
			}
			sel, err := intervalql.Eval(ast, intervals.IntDomain)
			if err != nil {
				return err
			}
			it := sel.Iter()
			for it.HasNext() {
				iv, ok := it.Next()
				if !ok {
					break
				}
				evalLog.Debugf("piece %s", iv.String())
				fmt.Fprintln(cmd.OutOrStdout(), iv.String())
			}
			if sel.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "∅")
			}
			return nil
		},
	}
}
