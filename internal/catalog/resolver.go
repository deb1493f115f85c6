package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

// Resolve looks a crop up by name. Unknown names return domain.ErrCropNotFound,
// with the closest catalog name in the message when one is near enough.
func (c *Catalog) Resolve(name string) (domain.Crop, error) {
	if crop, ok := c.Lookup(name); ok {
		return crop, nil
	}
	if suggestion, ok := c.Suggest(name); ok {
		return domain.Crop{}, fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrCropNotFound, name, suggestion)
	}
	return domain.Crop{}, fmt.Errorf("%w: %q", domain.ErrCropNotFound, name)
}

// Suggest returns the catalog name closest to input. A prefix match wins,
// otherwise the smallest edit distance within a limit that grows with name length.
// Ties keep catalog order.
func (c *Catalog) Suggest(input string) (string, bool) {
	token := normalize(input)
	if token == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, crop := range c.crops {
		cand := normalize(crop.Name)
		if cand == token {
			return crop.Name, true
		}
		if len(token) >= 2 && strings.HasPrefix(cand, token) {
			return crop.Name, true
		}
		dist := levenshtein.ComputeDistance(token, cand)
		if dist > distanceLimit(len(cand)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = crop.Name, dist
		}
	}
	return best, bestDist != -1
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
