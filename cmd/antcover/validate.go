// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcover/scpio"
)

func newValidateCmd(g *globalFlags) *cobra.Command {
	var instance, solution string
	cmd := &cobra.Command{
		Use:   "validate -i instance -s solution",
		Short: "Check that a solution file covers every sample of an instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			p, err := scpio.ReadInstanceFile(instance, cfg.SetcoverOptions())
			if err != nil {
				return err
			}
			sol, err := scpio.ReadSolutionFile(solution)
			if err != nil {
				return err
			}

			// Ground truth only: dominance plays no part in validity.
			if err := p.ComputeSamplesPerCandidate(cmd.Context()); err != nil {
				return err
			}
			covered := make([]bool, p.NumberOfSamples())
			pending := len(covered)
			for _, c := range sol {
				if c < 0 || c >= p.NumberOfCandidates() {
					return fmt.Errorf("candidate %d not in [0,%d)", c, p.NumberOfCandidates())
				}
				for _, s := range p.SamplesForCandidate(c) {
					if !covered[s] {
						covered[s] = true
						pending--
					}
				}
			}
			if pending > 0 {
				return fmt.Errorf("solution leaves %d of %d samples uncovered", pending, len(covered))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %d candidates cover all %d samples\n", len(sol), len(covered))

			return nil
		},
	}
	cmd.Flags().StringVarP(&instance, "instance", "i", "", "instance file")
	cmd.Flags().StringVarP(&solution, "solution", "s", "", "solution file")
	_ = cmd.MarkFlagRequired("instance")
	_ = cmd.MarkFlagRequired("solution")

	return cmd
}
