package balbis

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/mwiater/balbis/internal/recipe"
	"github.com/spf13/cobra"
)

var validResult = color.New(color.FgGreen).SprintFunc()

func runValidateRecipe(cmd *cobra.Command, recipeArg string) error {
	cfg := GetConfig()
	if cfg == nil {
		cfg = &appconfig.Config{}
	}

	path, err := recipe.Resolve(cfg.RecipesDirPath(), recipeArg)
	if err != nil {
		return err
	}

	rec, err := recipe.Load(path)
	if err != nil {
		return err
	}

	if err := recipe.Normalize(rec); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recipe:    %s\n", rec.Name)
	fmt.Fprintf(out, "Path:      %s\n", rec.Path)
	fmt.Fprintf(out, "Framework: %s\n", rec.Benchmark.Framework)
	fmt.Fprintf(out, "Enabled:   %v\n", rec.Benchmark.Enabled)
	fmt.Fprintf(out, "Args:      %d\n", len(rec.Benchmark.Args))
	fmt.Fprintln(out, validResult("Recipe is valid."))
	return nil
}
