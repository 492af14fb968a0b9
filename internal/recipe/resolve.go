// internal/recipe/resolve.go
package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve maps a user-supplied recipe argument to an existing file.
//
// Search order: the argument as a literal path, then inside recipesDir
// the basename as given, with ".yaml" appended, with ".yml" appended,
// and finally the stem (basename minus extension) with ".yaml". The
// first hit wins.
func Resolve(recipesDir, arg string) (string, error) {
	if pathExists(arg) {
		return arg, nil
	}

	base := filepath.Base(arg)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	candidates := []string{
		filepath.Join(recipesDir, base),
		filepath.Join(recipesDir, base+".yaml"),
		filepath.Join(recipesDir, base+".yml"),
		filepath.Join(recipesDir, stem+".yaml"),
	}
	for _, candidate := range candidates {
		if pathExists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("recipe not found: %s", arg)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
