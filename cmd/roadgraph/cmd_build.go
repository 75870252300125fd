package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildElementsPath string
	buildSegmentsPath string
	buildOutPath      string
	buildWeightType   string
	buildProtected    string
	buildPruneClasses string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a junction graph from road-element and road-segment GeoJSON files, then persist it",
	Long: `build folds two GeoJSON feature collections (road elements and road
segments) into a directed junction graph, prunes low-priority dead-end
pockets, simplifies degree-1/2 chains, and writes the result to disk in
roadgraph's line-oriented graph format.

Example:

  roadgraph build --elements elements.geojson --segments segments.geojson \
    --weight-type distance --out city.graph`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildElementsPath, "elements", "", "path to the road-element GeoJSON feature collection")
	buildCmd.Flags().StringVar(&buildSegmentsPath, "segments", "", "path to the road-segment GeoJSON feature collection")
	buildCmd.Flags().StringVar(&buildOutPath, "out", "", "path to write the persisted graph file to")
	buildCmd.Flags().StringVar(&buildWeightType, "weight-type", defaultWeightType, "weight type to optimize pruning/simplification for (distance|travel_time)")
	buildCmd.Flags().StringVar(&buildProtected, "protected", "", "comma-separated junction ids that must survive pruning and simplification")
	buildCmd.Flags().StringVar(&buildPruneClasses, "prune-classes", "", "comma-separated road classes eligible for pruning")

	_ = buildCmd.MarkFlagRequired("elements")
	_ = buildCmd.MarkFlagRequired("segments")
	_ = buildCmd.MarkFlagRequired("out")
}

func runBuild(cmd *cobra.Command, args []string) error {
	weightType, err := parseWeightType(buildWeightType)
	if err != nil {
		return err
	}
	protectedIDs, err := parseIDList(buildProtected)
	if err != nil {
		return err
	}
	prunedClasses := parseClassSet(buildPruneClasses)

	g, err := buildPipeline(buildElementsPath, buildSegmentsPath, weightType, protectedIDs, prunedClasses)
	if err != nil {
		return err
	}

	if err := writeGraph(buildOutPath, g, weightType, protectedIDs, prunedClasses); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "built graph with %d vertices and %d edges -> %s\n", g.VertexCount(), g.EdgeCount(), buildOutPath)

	return nil
}
