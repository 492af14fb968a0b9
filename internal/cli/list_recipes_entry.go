package balbis

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/mwiater/balbis/internal/recipe"
)

// runListRecipes prints one line per recipe file, styled by status.
// Status reflects the file itself: a recipe that parses lists as ENABLED
// or DISABLED, one that does not lists as INVALID. Environment checks
// like tool discovery belong to 'validate recipe'.
func runListRecipes() error {
	cfg := GetConfig()
	if cfg == nil {
		cfg = &appconfig.Config{}
	}

	dir := cfg.RecipesDirPath()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No recipes directory at %s\n", dir)
			return nil
		}
		return fmt.Errorf("unable to read recipes directory %s: %w", dir, err)
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	enabledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	disabledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	invalidStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	var lines []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		rec, err := recipe.Load(filepath.Join(dir, entry.Name()))
		switch {
		case err != nil:
			lines = append(lines, invalidStyle.Render(fmt.Sprintf("- %s (INVALID)", entry.Name())))
		case rec.Benchmark != nil && rec.Benchmark.Enabled:
			lines = append(lines, enabledStyle.Render(fmt.Sprintf("- %s (ENABLED)", entry.Name())))
		default:
			lines = append(lines, disabledStyle.Render(fmt.Sprintf("- %s (DISABLED)", entry.Name())))
		}
	}

	if len(lines) == 0 {
		fmt.Printf("No recipes found in %s\n", dir)
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s:", dir)))
	for _, line := range lines {
		fmt.Println("  " + line)
	}
	return nil
}
