package itinerary

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// Store keeps generated itineraries for later retrieval (detail view, PDF
// export). Entries expire after a day; itineraries are cheap to regenerate
// and nothing references them across restarts.
type Store interface {
	Save(itin *types.Itinerary)
	Get(id string) (*types.Itinerary, bool)
}

type cacheStore struct {
	c *cache.Cache
}

var _ Store = (*cacheStore)(nil)

func NewStore() Store {
	return &cacheStore{c: cache.New(24*time.Hour, time.Hour)}
}

func (s *cacheStore) Save(itin *types.Itinerary) {
	if itin == nil || itin.ID == "" {
		return
	}
	s.c.Set(itin.ID, itin, cache.DefaultExpiration)
}

func (s *cacheStore) Get(id string) (*types.Itinerary, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, false
	}
	itin, ok := v.(*types.Itinerary)
	return itin, ok
}
