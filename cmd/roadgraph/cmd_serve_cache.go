package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	serveCacheGraphPath    string
	serveCacheWeightType   string
	serveCacheProtected    string
	serveCachePruneClasses string
)

var serveCacheCmd = &cobra.Command{
	Use:   "serve-cache",
	Short: "Load a persisted graph once and answer repeated route queries against it",
	Long: `serve-cache loads a persisted graph a single time and then reads
origin/destination pairs from standard input, answering each against the
same in-memory graph rather than reloading it per query. This is the same
interactive loop as running roadgraph with no subcommand, except the weight
type is fixed up front by a flag instead of prompted for.`,
	RunE: runServeCache,
}

func init() {
	serveCacheCmd.Flags().StringVar(&serveCacheGraphPath, "graph", "", "path to a persisted graph file")
	serveCacheCmd.Flags().StringVar(&serveCacheWeightType, "weight-type", defaultWeightType, "weight type to route by (distance|travel_time)")
	serveCacheCmd.Flags().StringVar(&serveCacheProtected, "protected", "", "comma-separated protected ids the graph file must match")
	serveCacheCmd.Flags().StringVar(&serveCachePruneClasses, "prune-classes", "", "comma-separated pruned road classes the graph file must match")

	_ = serveCacheCmd.MarkFlagRequired("graph")
}

func runServeCache(cmd *cobra.Command, args []string) error {
	weightType, err := parseWeightType(serveCacheWeightType)
	if err != nil {
		return err
	}
	protectedIDs, err := parseIDList(serveCacheProtected)
	if err != nil {
		return err
	}
	prunedClasses := parseClassSet(serveCachePruneClasses)

	g, err := loadGraph(serveCacheGraphPath, weightType, protectedIDs, prunedClasses)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "graph loaded: %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())

	reader := bufio.NewReader(os.Stdin)
	seq := 0
	for {
		fmt.Fprint(cmd.OutOrStdout(), "origin,destination (or \"quit\")> ")
		line, readErr := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "quit" || line == "exit" {
			break
		}
		if line == "" {
			if readErr != nil {
				break
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
			break
		}
	}

	return nil
}

// parsePair splits a "from,to" line into two junction ids.
func parsePair(line string) (fromID, toID int64, err error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"origin,destination\", got %q", line)
	}

	fromID, err = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid origin id %q: %w", parts[0], err)
	}
	toID, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid destination id %q: %w", parts[1], err)
	}

	return fromID, toID, nil
}
