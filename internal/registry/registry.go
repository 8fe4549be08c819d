// Package registry resolves test selections (single number, inclusive
// range, or everything) into ordered test descriptors. Tier membership
// is fixed configuration: each tier owns a half-open id range and the
// ranges must tile the full id space with no overlap.
package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"ktr/internal/domain"
)

// ErrNotFound is returned when a requested test number does not fall in
// any tier's range.
var ErrNotFound = errors.New("test not found")

// TierRange assigns a half-open id interval [Lo, Hi) to a tier.
type TierRange struct {
	Tier domain.Tier
	Lo   int
	Hi   int
}

// DefaultTiers is the shipped tier layout for the KnightsTour suite.
var DefaultTiers = []TierRange{
	{Tier: domain.TierSimple, Lo: 0, Hi: 2},
	{Tier: domain.TierMove, Lo: 2, Hi: 15},
	{Tier: domain.TierLogic, Lo: 15, Hi: 29},
}

// Registry maps test numbers to descriptors.
type Registry struct {
	tiers   []TierRange
	testDir string
}

// New validates the tier layout and returns a Registry rooted at
// testDir. The ranges must be non-empty, non-overlapping and leave no
// gaps between the lowest and highest id.
func New(testDir string, tiers []TierRange) (*Registry, error) {
	if len(tiers) == 0 {
		return nil, errors.New("registry: no tier ranges configured")
	}

	sorted := make([]TierRange, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	for i, tr := range sorted {
		if tr.Lo >= tr.Hi {
			return nil, fmt.Errorf("registry: tier %s has empty range [%d, %d)", tr.Tier, tr.Lo, tr.Hi)
		}
		if i > 0 {
			prev := sorted[i-1]
			if tr.Lo < prev.Hi {
				return nil, fmt.Errorf("registry: tier %s range [%d, %d) overlaps %s [%d, %d)",
					tr.Tier, tr.Lo, tr.Hi, prev.Tier, prev.Lo, prev.Hi)
			}
			if tr.Lo > prev.Hi {
				return nil, fmt.Errorf("registry: gap between tier %s and tier %s: ids [%d, %d) belong to no tier",
					prev.Tier, tr.Tier, prev.Hi, tr.Lo)
			}
		}
	}

	return &Registry{tiers: sorted, testDir: testDir}, nil
}

// TierOf returns the tier owning the given test number.
func (r *Registry) TierOf(id int) (domain.Tier, bool) {
	for _, tr := range r.tiers {
		if id >= tr.Lo && id < tr.Hi {
			return tr.Tier, true
		}
	}
	return 0, false
}

// ByNumber resolves a single test number. A number outside every tier
// range yields ErrNotFound; callers report it and move on.
func (r *Registry) ByNumber(id int) (domain.TestDescriptor, error) {
	tier, ok := r.TierOf(id)
	if !ok {
		return domain.TestDescriptor{}, fmt.Errorf("test %d: %w", id, ErrNotFound)
	}
	return r.descriptor(id, tier), nil
}

// ByRange selects every test whose number lies in [start, end],
// ordered by number. The request is silently intersected with the tier
// ranges; ids outside every tier are dropped without error.
func (r *Registry) ByRange(start, end int) []domain.TestDescriptor {
	var tests []domain.TestDescriptor
	for _, tr := range r.tiers {
		for id := tr.Lo; id < tr.Hi; id++ {
			if id >= start && id <= end {
				tests = append(tests, r.descriptor(id, tr.Tier))
			}
		}
	}
	sort.Slice(tests, func(i, j int) bool { return tests[i].ID < tests[j].ID })
	return tests
}

// All returns every registered test, ordered by number.
func (r *Registry) All() []domain.TestDescriptor {
	lo, hi := r.tiers[0].Lo, r.tiers[len(r.tiers)-1].Hi
	return r.ByRange(lo, hi-1)
}

func (r *Registry) descriptor(id int, tier domain.Tier) domain.TestDescriptor {
	d := domain.TestDescriptor{ID: id, Tier: tier}
	d.Path = filepath.Join(r.testDir, tier.String(), d.Name()+".sv")
	return d
}
