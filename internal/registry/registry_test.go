package registry

import (
	"errors"
	"testing"

	"ktr/internal/domain"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := New("/proj/tests", DefaultTiers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return reg
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		tiers []TierRange
	}{
		{
			name:  "no tiers",
			tiers: nil,
		},
		{
			name: "overlapping ranges",
			tiers: []TierRange{
				{Tier: domain.TierSimple, Lo: 0, Hi: 3},
				{Tier: domain.TierMove, Lo: 2, Hi: 15},
			},
		},
		{
			name: "gap between ranges",
			tiers: []TierRange{
				{Tier: domain.TierSimple, Lo: 0, Hi: 2},
				{Tier: domain.TierMove, Lo: 5, Hi: 15},
			},
		},
		{
			name: "empty range",
			tiers: []TierRange{
				{Tier: domain.TierSimple, Lo: 2, Hi: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("/proj/tests", tt.tiers); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestTierOf(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		id       int
		expected domain.Tier
		ok       bool
	}{
		{id: 0, expected: domain.TierSimple, ok: true},
		{id: 1, expected: domain.TierSimple, ok: true},
		{id: 2, expected: domain.TierMove, ok: true},
		{id: 14, expected: domain.TierMove, ok: true},
		{id: 15, expected: domain.TierLogic, ok: true},
		{id: 28, expected: domain.TierLogic, ok: true},
		{id: 29, ok: false},
		{id: -1, ok: false},
	}

	for _, tt := range tests {
		tier, ok := reg.TierOf(tt.id)
		if ok != tt.ok {
			t.Errorf("TierOf(%d): expected ok=%v, got %v", tt.id, tt.ok, ok)
			continue
		}
		if ok && tier != tt.expected {
			t.Errorf("TierOf(%d): expected %s, got %s", tt.id, tt.expected, tier)
		}
	}
}

func TestByNumber(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("existing test", func(t *testing.T) {
		test, err := reg.ByNumber(17)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if test.ID != 17 || test.Tier != domain.TierLogic {
			t.Errorf("wrong descriptor: %+v", test)
		}
		if test.Name() != "KnightsTour_tb_17" {
			t.Errorf("wrong name: %s", test.Name())
		}
		expected := "/proj/tests/logic/KnightsTour_tb_17.sv"
		if test.Path != expected {
			t.Errorf("expected path %s, got %s", expected, test.Path)
		}
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := reg.ByNumber(29)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestByRange(t *testing.T) {
	reg := newTestRegistry(t)

	t.Run("move tier only", func(t *testing.T) {
		// [2, 14] must pick up every move test and nothing else.
		tests := reg.ByRange(2, 14)
		if len(tests) != 13 {
			t.Fatalf("expected 13 tests, got %d", len(tests))
		}
		for i, test := range tests {
			if test.Tier != domain.TierMove {
				t.Errorf("test %d: expected move tier, got %s", test.ID, test.Tier)
			}
			if test.ID != i+2 {
				t.Errorf("expected ordered ids, got %d at position %d", test.ID, i)
			}
		}
	})

	t.Run("crossing tier boundaries", func(t *testing.T) {
		tests := reg.ByRange(1, 16)
		if len(tests) != 16 {
			t.Fatalf("expected 16 tests, got %d", len(tests))
		}
		if tests[0].Tier != domain.TierSimple || tests[len(tests)-1].Tier != domain.TierLogic {
			t.Error("range should span all three tiers")
		}
	})

	t.Run("out-of-range ids silently dropped", func(t *testing.T) {
		tests := reg.ByRange(25, 100)
		if len(tests) != 4 {
			t.Fatalf("expected 4 tests, got %d", len(tests))
		}
	})

	t.Run("fully outside", func(t *testing.T) {
		if tests := reg.ByRange(50, 60); len(tests) != 0 {
			t.Errorf("expected no tests, got %d", len(tests))
		}
	})
}

func TestAll(t *testing.T) {
	reg := newTestRegistry(t)

	tests := reg.All()
	if len(tests) != 29 {
		t.Fatalf("expected 29 tests, got %d", len(tests))
	}
	for i, test := range tests {
		if test.ID != i {
			t.Errorf("expected id %d at position %d, got %d", i, i, test.ID)
		}
	}
}
