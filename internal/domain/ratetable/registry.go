package ratetable

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Registry holds the rate tables known to the process, keyed by fiscal
// year. Sets handed out by Get must be treated as read-only.
type Registry struct {
	mu          sync.RWMutex
	sets        map[int]Set
	defaultYear int
}

// NewRegistry creates a registry. A defaultYear of zero selects the latest
// registered year.
func NewRegistry(defaultYear int, sets ...Set) (*Registry, error) {
	r := &Registry{sets: make(map[int]Set, len(sets)), defaultYear: defaultYear}
	for _, set := range sets {
		if err := r.Put(set); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Put validates and registers set, replacing any set for the same year.
func (r *Registry) Put(set Set) error {
	if err := set.Validate(); err != nil {
		return fmt.Errorf("fiscal year %d: %w", set.FiscalYear, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.FiscalYear] = set
	return nil
}

// Get returns the set for year; year zero resolves the default year.
func (r *Registry) Get(year int) (Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if year == 0 {
		year = r.defaultLocked()
	}
	set, ok := r.sets[year]
	if !ok {
		return Set{}, fmt.Errorf("%w: fiscal year %d", ErrNotFound, year)
	}
	return set, nil
}

func (r *Registry) Has(year int) bool {
	_, err := r.Get(year)
	return err == nil
}

// Years lists the registered fiscal years in ascending order.
func (r *Registry) Years() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	years := lo.Keys(r.sets)
	sort.Ints(years)
	return years
}

func (r *Registry) DefaultYear() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultLocked()
}

func (r *Registry) defaultLocked() int {
	if r.defaultYear != 0 {
		return r.defaultYear
	}
	if len(r.sets) == 0 {
		return 0
	}
	return lo.Max(lo.Keys(r.sets))
}
