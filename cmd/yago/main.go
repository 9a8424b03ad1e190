package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GokerOzenc93/yago/internal/app"
	"github.com/GokerOzenc93/yago/version"
)

var rootCmd = &cobra.Command{
	Use:   "yago [file]",
	Short: "Interactive CAD viewer with geometric snapping",
	Long: `yago is an interactive viewer and measurement tool for STL and
OpenSCAD files. It snaps picks to endpoints, midpoints, centers,
quadrants, perpendicular feet, intersections and edges, and measures
dimensions and radii against the snapped points.`,
	Version: version.GetFullVersion(),
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := ""
		if len(args) > 0 {
			source = args[0]
		}
		app.Run(source)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
