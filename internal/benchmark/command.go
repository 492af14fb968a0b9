// internal/benchmark/command.go
package benchmark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mwiater/balbis/internal/recipe"
)

// PlaceholderModel stands in for the discovered model id when a command
// is built without probing the endpoint, as in dry runs.
const PlaceholderModel = "__from_v1_models__"

// llamaBenchyDefaults are the arguments every llama-benchy run gets
// unless the recipe sets them itself. Order matters: defaulted keys are
// emitted in this order so generated commands stay stable.
var llamaBenchyDefaults = []recipe.Arg{
	{Key: "pp", Value: []any{2048}},
	{Key: "depth", Value: []any{0}},
	{Key: "save_result", Value: "test.md"},
	{Key: "enable_prefix_caching", Value: true},
}

// reservedArgKeys are supplied by the launcher itself and never taken
// from the recipe's args mapping.
var reservedArgKeys = map[string]struct{}{
	"base_url": {},
	"model":    {},
}

// ApplyDefaults returns args with framework defaults filled in for any
// key the recipe leaves unset. Defaulted keys are prepended in canonical
// order; keys the recipe sets keep their position and value. Calling it
// on already-defaulted args is a no-op.
func ApplyDefaults(args recipe.Args) recipe.Args {
	var missing recipe.Args
	for _, def := range llamaBenchyDefaults {
		if !args.Has(def.Key) {
			missing = append(missing, def)
		}
	}
	if len(missing) == 0 {
		return args
	}
	return append(missing, args...)
}

// Build assembles the full llama-benchy invocation for a normalized
// recipe. The recipe's args are updated in place with framework
// defaults so later inspection shows the arguments actually used.
//
// Arg conversion rules: keys become --kebab-case flags; a true boolean
// emits the flag alone; a false boolean emits nothing; a list emits the
// flag once followed by one token per element, or nothing when empty;
// anything else emits the flag plus a single value token.
func Build(rec *recipe.Recipe, model string) []string {
	args := ApplyDefaults(rec.Benchmark.Args)
	rec.Benchmark.Args = args

	cmd := []string{recipe.FrameworkLlamaBenchy, "--base-url", rec.BaseURL(), "--model", model}
	for _, arg := range args {
		if _, reserved := reservedArgKeys[arg.Key]; reserved {
			continue
		}
		cmd = append(cmd, flagTokens(arg.Key, arg.Value)...)
	}
	return cmd
}

func flagTokens(key string, value any) []string {
	flag := "--" + strings.ReplaceAll(key, "_", "-")

	switch v := value.(type) {
	case bool:
		if v {
			return []string{flag}
		}
		return nil
	case []any:
		if len(v) == 0 {
			return nil
		}
		tokens := make([]string, 0, len(v)+1)
		tokens = append(tokens, flag)
		for _, item := range v {
			tokens = append(tokens, formatValue(item))
		}
		return tokens
	default:
		return []string{flag, formatValue(v)}
	}
}

// formatValue renders a scalar arg value as a single command token.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
