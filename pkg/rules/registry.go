package rules

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"lifegen/pkg/core"
)

var presets = map[string]LifeLike{}

// Register adds a named count rule. Empty names are ignored.
func Register(r LifeLike) {
	if r.name == "" {
		return
	}
	presets[r.name] = r
}

// Lookup resolves a preset name or a B/S rulestring.
func Lookup(name string) (CountRules, error) {
	if r, ok := presets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return r, nil
	}
	r, err := ParseLifeLike(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown rule %q", core.ErrInvalidArgument, name)
	}
	return r, nil
}

// Names lists the registered preset names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(presets))
}

func init() {
	Register(Classic)
	Register(HexB2S34)
	Register(HexB2S35)
	Register(HexB24S35)
	Register(HexB2S23)
}
