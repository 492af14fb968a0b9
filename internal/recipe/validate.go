// internal/recipe/validate.go
package recipe

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FrameworkLlamaBenchy is the one benchmark framework balbis can launch.
const FrameworkLlamaBenchy = "llama-benchy"

// supportedFrameworks is a closed set. A new framework means a new
// defaults policy and dependency check, not just a new entry here.
var supportedFrameworks = map[string]struct{}{
	FrameworkLlamaBenchy: {},
}

// lookPath is swapped out in tests to control executable discovery.
var lookPath = exec.LookPath

// argsSchema constrains benchmark arg values to the shapes the command
// builder understands: booleans, numbers, strings, or flat lists of those.
var argsSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"anyOf": []any{
			map[string]any{"type": "boolean"},
			map[string]any{"type": "number"},
			map[string]any{"type": "string"},
			map[string]any{
				"type": "array",
				"items": map[string]any{
					"anyOf": []any{
						map[string]any{"type": "boolean"},
						map[string]any{"type": "number"},
						map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

// Normalize fills benchmark defaults into the recipe in place and checks
// that the section is runnable. It is idempotent, so plan-time and
// run-time callers can both apply it and end up with the same recipe.
func Normalize(recipe *Recipe) error {
	if recipe.Benchmark == nil {
		recipe.Benchmark = &Benchmark{}
	}
	bench := recipe.Benchmark
	if strings.TrimSpace(bench.Framework) == "" {
		bench.Framework = FrameworkLlamaBenchy
	}
	if bench.Args == nil {
		bench.Args = Args{}
	}

	if _, ok := supportedFrameworks[bench.Framework]; !ok {
		return fmt.Errorf("unsupported benchmark framework in recipe: %s\nSupported frameworks: %s",
			bench.Framework, strings.Join(frameworkNames(), ", "))
	}

	if err := validateArgs(bench.Args); err != nil {
		return err
	}

	if bench.Enabled {
		if _, err := lookPath(FrameworkLlamaBenchy); err != nil {
			return fmt.Errorf("benchmark.enabled=true requires %q in PATH\nInstall with: uv pip install -U llama-benchy", FrameworkLlamaBenchy)
		}
	}

	return nil
}

// validateArgs checks decoded arg values against the shape schema.
func validateArgs(args Args) error {
	if len(args) == 0 {
		return nil
	}

	payload := make(map[string]any, len(args))
	for _, arg := range args {
		payload[arg.Key] = arg.Value
	}
	argBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal benchmark args for validation: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(argsSchema), gojsonschema.NewBytesLoader(argBytes))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("benchmark args failed validation: %s", strings.Join(details, "; "))
}

func frameworkNames() []string {
	names := make([]string, 0, len(supportedFrameworks))
	for name := range supportedFrameworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
