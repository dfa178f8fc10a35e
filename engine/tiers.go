// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// TierSpec is one prize tier: a name and its winner quota. The ordered
// list of specs is fixed per deployment and defines the draw sequence.
type TierSpec struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ParseTiers parses a tier configuration string of the form
// "grand:1,second:3,consolation:10" into an ordered spec list.
func ParseTiers(spec string) ([]TierSpec, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	seen := map[string]bool{}
	var tiers []TierSpec
	for _, part := range strings.Split(spec, ",") {
		name, countStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid tier %q: want name:count", part)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid tier %q: count must be a positive integer", part)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate tier %q", name)
		}
		seen[name] = true
		tiers = append(tiers, TierSpec{Name: name, Count: count})
	}
	return tiers, nil
}
