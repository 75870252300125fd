// Command roadgraph builds, persists, and queries a road-network junction
// graph. It wraps the build/prune/simplify/route pipeline behind three
// subcommands (build, route, serve-cache) and, run with no subcommand,
// falls back to a minimal interactive loop: prompt for a weight type, then
// repeated origin/destination pairs, each emitting a route.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadgraph",
	Short: "Build, persist, and query a road-network junction graph",
	Long: `roadgraph turns raw road-element and road-segment records into a
directed junction graph, prunes and simplifies it, and answers shortest-path
queries over it by distance or travel time.

Run with no subcommand for the interactive route loop: it prompts for a
weight type, then repeatedly reads origin/destination junction id pairs and
writes a route file for each.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(serveCacheCmd)
}
