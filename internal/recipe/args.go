// internal/recipe/args.go
package recipe

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Arg is a single benchmark argument: a stable key plus its decoded value.
// Keys convert to flags by replacing underscores with hyphens.
type Arg struct {
	Key   string
	Value any
}

// Args is an ordered argument mapping. A plain Go map would shuffle
// iteration order between runs; decoding through the yaml.Node mapping
// keeps arguments in recipe order so built commands are reproducible.
type Args []Arg

// UnmarshalYAML decodes a YAML mapping into an ordered argument list.
func (a *Args) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*a = Args{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: benchmark args must be a mapping", value.Line)
	}

	out := make(Args, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		var decoded any
		if err := valueNode.Decode(&decoded); err != nil {
			return fmt.Errorf("line %d: decode arg %q: %w", valueNode.Line, keyNode.Value, err)
		}
		out = append(out, Arg{Key: keyNode.Value, Value: decoded})
	}
	*a = out
	return nil
}

// Get returns the value stored under key and whether it is present.
func (a Args) Get(key string) (any, bool) {
	for _, arg := range a {
		if arg.Key == key {
			return arg.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (a Args) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set replaces the value under key in place, appending the pair when the
// key is absent.
func (a *Args) Set(key string, value any) {
	for i, arg := range *a {
		if arg.Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Arg{Key: key, Value: value})
}
