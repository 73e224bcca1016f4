// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported membership function kinds",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Printf("%-12s  %s\n", "Kind", "Parameters")
	fmt.Println(strings.Repeat("-", 32))
	for _, kind := range fuzz.Kinds() {
		params, _ := fuzz.Signature(kind)
		fmt.Printf("%-12s  %s\n", kind, strings.Join(params, ", "))
	}
	fmt.Println("\nAll kinds accept --y-min and --y-max to bound the output range.")
}

func init() {
	rootCmd.AddCommand(listCmd)
}
