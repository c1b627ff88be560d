package catalog

import (
	"sort"
	"strings"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// LocationCatalog lists the anchor destinations itineraries are built around.
// Implementations own the data; callers must treat results as read-only.
type LocationCatalog interface {
	GetAll() []types.Location
	FindByID(id string) *types.Location
}

// RentalLocationCatalog lists camper rental stations.
type RentalLocationCatalog interface {
	GetAll() []types.RentalLocation
	FindByID(id string) *types.RentalLocation
}

// CamperCatalog lists the rentable fleet.
type CamperCatalog interface {
	GetAll() []types.Camper
}

type inMemoryLocations struct {
	locations []types.Location
}

// NewLocationCatalog returns the seeded in-memory location catalog.
func NewLocationCatalog() LocationCatalog {
	return &inMemoryLocations{locations: seedLocations}
}

// NewLocationCatalogWith returns a catalog over the given fixture data.
func NewLocationCatalogWith(locations []types.Location) LocationCatalog {
	return &inMemoryLocations{locations: locations}
}

func (c *inMemoryLocations) GetAll() []types.Location {
	out := make([]types.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

func (c *inMemoryLocations) FindByID(id string) *types.Location {
	for _, l := range c.locations {
		if strings.EqualFold(l.ID, id) {
			loc := l
			return &loc
		}
	}
	return nil
}

type inMemoryRentals struct {
	stations []types.RentalLocation
}

// NewRentalLocationCatalog returns the seeded in-memory rental station catalog.
func NewRentalLocationCatalog() RentalLocationCatalog {
	return &inMemoryRentals{stations: seedRentalLocations}
}

func (c *inMemoryRentals) GetAll() []types.RentalLocation {
	out := make([]types.RentalLocation, len(c.stations))
	copy(out, c.stations)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].City < out[j].City
	})
	return out
}

func (c *inMemoryRentals) FindByID(id string) *types.RentalLocation {
	for _, s := range c.stations {
		if strings.EqualFold(s.ID, id) {
			st := s
			return &st
		}
	}
	return nil
}

type inMemoryCampers struct {
	campers []types.Camper
}

// NewCamperCatalog returns the seeded in-memory fleet catalog.
func NewCamperCatalog() CamperCatalog {
	return &inMemoryCampers{campers: seedCampers}
}

func (c *inMemoryCampers) GetAll() []types.Camper {
	out := make([]types.Camper, len(c.campers))
	copy(out, c.campers)
	return out
}
