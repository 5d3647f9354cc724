// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcover/scpio"
)

func newPreprocessCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preprocess instance",
		Short: "Run dominance and mandatory analysis on an instance and print the summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			p, err := scpio.ReadInstanceFile(args[0], cfg.SetcoverOptions())
			if err != nil {
				return err
			}
			ix, err := p.Build(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ix.String())
			fmt.Fprintf(cmd.OutOrStdout(), "mandatory: %v\n", ix.MandatoryCandidates())

			return nil
		},
	}
}
