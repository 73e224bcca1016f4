// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fuzzplot/pkg/types"
)

var evalCmd = &cobra.Command{
	Use:   "eval <kind> <x> [x...]",
	Short: "Evaluate a membership function at specific points",
	Long: `Eval prints the membership degree µ(x) of the configured function at
each given x value:

  fuzzplot eval s --params "2,8" 2 5 8
  fuzzplot eval gauss --params "5,1" --json 4 5 6`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	f, err := funcFromFlags(cmd, args[0])
	if err != nil {
		return err
	}

	points := make([]types.Point, 0, len(args)-1)
	for _, arg := range args[1:] {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid x value %q: %w", arg, err)
		}
		points = append(points, types.Point{X: x, Y: f.Eval(x)})
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	}

	for _, p := range points {
		fmt.Printf("µ(%g) = %g\n", p.X, p.Y)
	}
	return nil
}

func init() {
	addSpecFlags(evalCmd)
	evalCmd.Flags().Bool("json", false, "output points as JSON")

	rootCmd.AddCommand(evalCmd)
}
