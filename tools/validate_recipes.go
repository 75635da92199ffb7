//go:build ignore

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Import the recipe package
	"github.com/mtreloar/souschef/internal/recipe"
)

// Statistics tracks validation results
type Statistics struct {
	TotalFiles   int
	ParseSuccess int
	ParseFailure int
	TotalSteps   int
	TimedSteps   int
	TagCounts    map[string]int
	Failures     []Failure
}

// Failure stores information about a recipe that did not validate
type Failure struct {
	File  string
	Error string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run tools/validate_recipes.go <cookbook-dir>")
		fmt.Println("Example: go run tools/validate_recipes.go ~/.souschef/recipes")
		os.Exit(1)
	}

	dir := os.Args[1]
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Printf("Error reading directory: %v\n", err)
		os.Exit(1)
	}

	stats := Statistics{TagCounts: make(map[string]int)}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		stats.TotalFiles++
		path := filepath.Join(dir, entry.Name())

		r, err := recipe.LoadFile(path)
		if err != nil {
			stats.ParseFailure++
			stats.Failures = append(stats.Failures, Failure{
				File:  entry.Name(),
				Error: err.Error(),
			})
			continue
		}

		stats.ParseSuccess++
		stats.TotalSteps += len(r.Steps)
		for _, step := range r.Steps {
			if step.Duration > 0 {
				stats.TimedSteps++
			}
		}
		for _, tag := range r.Tags {
			stats.TagCounts[strings.ToLower(tag)]++
		}
	}

	printSummary(&stats)

	if stats.ParseFailure > 0 {
		os.Exit(1)
	}
}

func printSummary(stats *Statistics) {
	fmt.Println("=== Cookbook Validation ===")
	fmt.Printf("Files:       %d\n", stats.TotalFiles)
	fmt.Printf("Valid:       %d\n", stats.ParseSuccess)
	fmt.Printf("Invalid:     %d\n", stats.ParseFailure)
	fmt.Printf("Total steps: %d (%d with timers)\n", stats.TotalSteps, stats.TimedSteps)

	if len(stats.TagCounts) > 0 {
		fmt.Println("\nTags:")
		for tag, count := range stats.TagCounts {
			fmt.Printf("  %-16s %d\n", tag, count)
		}
	}

	if len(stats.Failures) > 0 {
		fmt.Println("\nFailures:")
		for _, f := range stats.Failures {
			fmt.Printf("  %s: %s\n", f.File, f.Error)
		}
	}
}
