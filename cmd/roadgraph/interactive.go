package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadgraph/graph"
)

var interactiveGraphPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&interactiveGraphPath, "graph", "", "path to a persisted graph file (interactive mode)")
}

// runInteractive implements the minimal loop: prompt for weight type, then
// repeated origin/destination pairs, each emitting a route file.
func runInteractive(cmd *cobra.Command, args []string) error {
	if interactiveGraphPath == "" {
		return cmd.Help()
	}

	reader := bufio.NewReader(os.Stdin)

	var weightType graph.WeightType
	for {
		fmt.Fprint(cmd.OutOrStdout(), "weight type (distance/travel_time/quit)> ")
		line, readErr := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "quit" {
			return nil
		}
		w, err := parseWeightType(line)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), err)
			if readErr != nil {
				return nil
			}
			continue
		}
		weightType = w
		break
	}

	g, err := loadGraph(interactiveGraphPath, weightType, nil, nil)
	if err != nil {
		return err
	}

	seq := 0
	for {
		fmt.Fprint(cmd.OutOrStdout(), "origin,destination (or \"quit\")> ")
		line, readErr := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "quit" || line == "exit" {
			return nil
		}
		if line == "" {
			if readErr != nil {
				return nil
			}
			continue
		}

		fromID, toID, parseErr := parsePair(line)
		if parseErr != nil {
			fmt.Fprintln(cmd.OutOrStdout(), parseErr)
			continue
		}

		seq++
		outPath := fmt.Sprintf("route_%d.txt", seq)
		if err := routeAndEmit(cmd, g, weightType, fromID, toID, outPath); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), err)
		}

		if readErr != nil {
			return nil
		}
	}
}
