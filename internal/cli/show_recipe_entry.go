package balbis

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/mwiater/balbis/internal/benchmark"
	"github.com/mwiater/balbis/internal/recipe"
	"github.com/mwiater/balbis/internal/util"
	"github.com/spf13/cobra"
)

func runShowRecipe(cmd *cobra.Command, recipeArg string) error {
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

	cmdline := benchmark.Build(rec, benchmark.PlaceholderModel)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recipe:    %s\n", rec.Name)
	fmt.Fprintf(out, "Path:      %s\n", rec.Path)
	fmt.Fprintf(out, "Framework: %s\n", rec.Benchmark.Framework)
	fmt.Fprintf(out, "Enabled:   %v\n", rec.Benchmark.Enabled)
	fmt.Fprintf(out, "Base URL:  %s\n", rec.BaseURL())
	fmt.Fprintln(out, "Args:")
	for _, arg := range rec.Benchmark.Args {
		fmt.Fprintf(out, "  %s: %v\n", arg.Key, arg.Value)
	}
	fmt.Fprintln(out, "Benchmark command (dry run):")
	fmt.Fprintf(out, "  %s\n", util.ShellJoin(cmdline))

	if DebugEnabled() {
		pp.Println(rec)
	}
	return nil
}
