package review

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Index is an explicit keyed review store (restaurant -> cleaned reviews),
// passed by reference to whoever needs repeat access within a process. It is
// deliberately NOT package-global state; each owner constructs its own.
type Index struct {
	cache *lru.Cache[string, []string]
}

// NewIndex creates an index retaining up to maxRestaurants entries.
func NewIndex(maxRestaurants int) (*Index, error) {
	if maxRestaurants <= 0 {
		maxRestaurants = 128
	}
	c, err := lru.New[string, []string](maxRestaurants)
	if err != nil {
		return nil, err
	}
	return &Index{cache: c}, nil
}

// Put stores the cleaned reviews for a restaurant, replacing any previous set.
func (ix *Index) Put(restaurant string, reviews []string) {
	ix.cache.Add(restaurant, append([]string(nil), reviews...))
}

// Get returns the stored reviews for a restaurant.
func (ix *Index) Get(restaurant string) ([]string, bool) {
	v, ok := ix.cache.Get(restaurant)
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// Len reports how many restaurants are currently indexed.
func (ix *Index) Len() int { return ix.cache.Len() }
