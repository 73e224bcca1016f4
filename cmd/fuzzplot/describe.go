// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <kind>",
	Short: "Print the piecewise definition of a configured function",
	Long: `Describe renders the piecewise formula of the configured membership
function with its parameter values substituted:

  fuzzplot describe s --params "2,8" --y-min 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	f, err := funcFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	fmt.Print(f.Definition())
	return nil
}

func init() {
	addSpecFlags(describeCmd)

	rootCmd.AddCommand(describeCmd)
}
