// internal/cli/run_benchmark_entry.go
package balbis

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/mwiater/balbis/internal/benchmark"
	"github.com/mwiater/balbis/internal/recipe"
)

var failedMessage = color.New(color.FgRed).SprintFunc()

// runRunBenchmark resolves and loads the recipe, applies the
// save-result override, and hands off to the benchmark runner. The
// runner reports its own failures to the operator, so a nonzero exit
// code comes back as a message-less ExitError carrying the status.
func runRunBenchmark(ctx context.Context, recipeArg, saveResult string, dryRun bool) error {
	cfg := GetConfig()
	if cfg == nil {
		cfg = &appconfig.Config{}
	}

	path, err := recipe.Resolve(cfg.RecipesDirPath(), recipeArg)
	if err != nil {
		fmt.Println(failedMessage(fmt.Sprintf("Error: %v", err)))
		return &ExitError{Code: 1}
	}

	rec, err := recipe.Load(path)
	if err != nil {
		fmt.Println(failedMessage(fmt.Sprintf("Error: %v", err)))
		return &ExitError{Code: 1}
	}

	if saveResult != "" {
		if rec.Benchmark == nil {
			rec.Benchmark = &recipe.Benchmark{}
		}
		rec.Benchmark.Args.Set("save_result", saveResult)
	}

	opts := benchmark.Options{DryRun: dryRun, Warmup: cfg.Warmup}
	if code := benchmark.Run(ctx, cfg, rec, opts); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
