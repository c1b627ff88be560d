package engine

import (
	"strings"

	"github.com/broccolitours/itinerary-api/internal/api/catalog"
	"github.com/broccolitours/itinerary-api/internal/types"
)

// ResolveLocation maps loose user input to a concrete anchor location.
//
// Order: catalog id, then case-insensitive substring match of the free-text
// query against name/region, then the catalog default when no query was given.
// A non-empty query with no match returns nil on purpose: the prompt builder
// then uses the raw query text instead of silently substituting a plausible
// but wrong anchor.
func ResolveLocation(prefs types.TravelPreferences, locations catalog.LocationCatalog) *types.Location {
	if prefs.LocationID != "" {
		if byID := locations.FindByID(prefs.LocationID); byID != nil {
			return byID
		}
	}

	all := locations.GetAll()
	query := strings.ToLower(strings.TrimSpace(prefs.LocationQuery))
	if query == "" {
		if len(all) == 0 {
			return nil
		}
		first := all[0]
		return &first
	}

	for _, l := range all {
		if strings.Contains(strings.ToLower(l.Name), query) ||
			strings.Contains(strings.ToLower(l.Region), query) {
			match := l
			return &match
		}
	}
	return nil
}
