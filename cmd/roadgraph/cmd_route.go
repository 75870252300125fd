package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadgraph/graph"
	"github.com/katalvlaran/roadgraph/metrics"
	"github.com/katalvlaran/roadgraph/shortestpath"
)

const defaultWeightType = "distance"

var (
	routeGraphPath    string
	routeWeightType   string
	routeProtected    string
	routePruneClasses string
	routeFrom         int64
	routeTo           int64
	routeOut          string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Answer a single shortest-path query against a persisted graph",
	Long: `route loads a persisted graph and finds the cheapest path between
two junctions under the given weight type, writing the result to a route
file.

Example:

  roadgraph route --graph city.graph --weight-type distance --from 101 --to 205 --out route.txt`,
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&routeGraphPath, "graph", "", "path to a persisted graph file")
	routeCmd.Flags().StringVar(&routeWeightType, "weight-type", defaultWeightType, "weight type to route by (distance|travel_time)")
	routeCmd.Flags().StringVar(&routeProtected, "protected", "", "comma-separated protected ids the graph file must match")
	routeCmd.Flags().StringVar(&routePruneClasses, "prune-classes", "", "comma-separated pruned road classes the graph file must match")
	routeCmd.Flags().Int64Var(&routeFrom, "from", 0, "origin junction id")
	routeCmd.Flags().Int64Var(&routeTo, "to", 0, "destination junction id")
	routeCmd.Flags().StringVar(&routeOut, "out", "route.txt", "path to write the route file to")

	_ = routeCmd.MarkFlagRequired("graph")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")
}

func runRoute(cmd *cobra.Command, args []string) error {
	weightType, err := parseWeightType(routeWeightType)
	if err != nil {
		return err
	}
	protectedIDs, err := parseIDList(routeProtected)
	if err != nil {
		return err
	}
	prunedClasses := parseClassSet(routePruneClasses)

	g, err := loadGraph(routeGraphPath, weightType, protectedIDs, prunedClasses)
	if err != nil {
		return err
	}

	return routeAndEmit(cmd, g, weightType, routeFrom, routeTo, routeOut)
}

// routeAndEmit runs a single shortest-path query against g, records the
// outcome and latency to metrics, writes a route file, and prints a
// one-line summary to cmd's output stream.
func routeAndEmit(cmd *cobra.Command, g *graph.Graph, weightType graph.WeightType, fromID, toID int64, outPath string) error {
	started := time.Now()
	pathIDs, cost, found, err := shortestpath.FindShortestPath(g, fromID, toID, weightType)
	metrics.RecordRoute(string(weightType), found, time.Since(started).Seconds())
	if err != nil {
		return fmt.Errorf("routing from %d to %d: %w", fromID, toID, err)
	}

	if err := writeRouteFile(outPath, fromID, toID, weightType, pathIDs, cost, found); err != nil {
		return err
	}

	if !found {
		fmt.Fprintf(cmd.OutOrStdout(), "no route from %d to %d -> %s\n", fromID, toID, outPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "route %d -> %d: cost %s over %d junctions -> %s\n", fromID, toID, formatRouteCost(cost), len(pathIDs), outPath)

	return nil
}
