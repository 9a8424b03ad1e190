package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GokerOzenc93/yago/pkg/analysis"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display geometry statistics for an STL file",
	Long:  "Show deduplicated vertex and feature-edge counts, dimensions, surface area and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	solid := scene.NewSolid(scene.SolidImported, model.Mesh)
	report := analysis.Analyze(solid)

	fmt.Println("Model Information")
	fmt.Println("=================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Geometry:")
	fmt.Printf("  Vertices (deduplicated): %d\n", report.VertexCount)
	fmt.Printf("  Feature edges: %d\n", report.EdgeCount)
	fmt.Printf("  Triangles: %d\n", report.TriangleCount)
	fmt.Printf("  Surface area: %s\n\n", analysis.FormatLength(report.SurfaceArea, "square units"))

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(report.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(report.Bounds.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(report.Bounds.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %s\n", analysis.FormatLength(report.Dimensions.X, "units"))
	fmt.Printf("  Depth (Y): %s\n", analysis.FormatLength(report.Dimensions.Y, "units"))
	fmt.Printf("  Height (Z): %s\n", analysis.FormatLength(report.Dimensions.Z, "units"))
	fmt.Printf("  Diagonal: %s\n\n", analysis.FormatLength(report.Bounds.Diagonal(), "units"))

	fmt.Println("Feature Edge Lengths:")
	fmt.Printf("  Minimum: %s\n", analysis.FormatLength(report.MinEdgeLength, "units"))
	fmt.Printf("  Maximum: %s\n", analysis.FormatLength(report.MaxEdgeLength, "units"))
	fmt.Printf("  Average: %s\n", analysis.FormatLength(report.AvgEdgeLength, "units"))
}
