package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"edakit/pkg/analysis"
	"edakit/pkg/data"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input   : Path to input CSV file. Default = testdata/concrete_data.csv
// --out-dir : Directory the figures are written to. Default = figures
// --format  : Figure format: png, svg, pdf. Default = png
// --verbose : Log loader and figure activity to stderr
//
// Example:
//   go run ./cmd/examples/concrete --input testdata/concrete_data.csv --format svg
//
// ---------------------------------------------------------------------
//

func printRow(label string, headers []string, values []float64) {
	fmt.Printf("%-22s", label)
	for i := range headers {
		fmt.Printf("%12.4f", values[i])
	}
	fmt.Println()
}

func main() {
	inputPath := flag.String("input", "testdata/concrete_data.csv", "Path to input CSV file")
	outDir := flag.String("out-dir", "figures", "Directory for rendered figures")
	format := flag.String("format", "png", "Figure format: png, svg, pdf")
	verbose := flag.Bool("verbose", false, "Log loader and figure activity")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ds, err := data.Load(*inputPath, data.WithLogger(logger))
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	fmt.Println(ds)

	renderer := &analysis.FileRenderer{Dir: *outDir, Format: *format}
	an := analysis.New(ds, analysis.WithRenderer(renderer), analysis.WithLogger(logger))

	headers := []string{"ash", "slag", "strength", "water"}

	// ---- Summary ----
	means, err := an.Mean(headers)
	if err != nil {
		log.Fatalf("Error computing means: %v", err)
	}
	ranges, err := an.Range(headers)
	if err != nil {
		log.Fatalf("Error computing ranges: %v", err)
	}
	stds, err := an.Std(headers)
	if err != nil {
		log.Fatalf("Error computing standard deviations: %v", err)
	}
	fmt.Printf("%-22s", "")
	for _, h := range headers {
		fmt.Printf("%12s", h)
	}
	fmt.Println()
	printRow("MEANS", headers, means)
	printRow("RANGES", headers, ranges)
	printRow("STANDARD DEVIATIONS", headers, stds)

	// ---- Figures ----
	if _, _, err := an.PairPlot(headers, "Figure 1. Components and Strength of Concrete"); err != nil {
		log.Fatalf("Error building pair plot: %v", err)
	}
	if _, _, err := an.Scatter("strength", "water", "Figure 2. Water Amount vs. Strength of Concrete"); err != nil {
		log.Fatalf("Error building scatter plot: %v", err)
	}
	if _, _, err := an.Scatter("ash", "slag", "Figure 3. Ash and Slag Amount in Concrete"); err != nil {
		log.Fatalf("Error building scatter plot: %v", err)
	}
	if err := an.Show(); err != nil {
		log.Fatalf("Error rendering figures: %v", err)
	}
	for _, p := range renderer.Paths {
		fmt.Println("Saved figure to", p)
	}
}
