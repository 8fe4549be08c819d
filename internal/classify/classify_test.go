package classify

import (
	"fmt"
	"strings"
	"testing"

	"ktr/internal/domain"
	"ktr/internal/tour"
)

func TestCompilation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.Status
	}{
		{
			name:     "clean log",
			text:     "vlog 10.7c\nCompiling module KnightsTour\nTop level modules:\n  KnightsTour_tb\n",
			expected: domain.StatusSuccess,
		},
		{
			name:     "warning only",
			text:     "** Warning: (vlog-2623) port mismatch\n",
			expected: domain.StatusWarning,
		},
		{
			name:     "error only",
			text:     "** Error: (vlog-13069) near \"endmodule\": syntax error\n",
			expected: domain.StatusError,
		},
		{
			name:     "error beats warning regardless of order",
			text:     "** Warning: something minor\n** Error: something fatal\n",
			expected: domain.StatusError,
		},
		{
			name:     "warning after error still error",
			text:     "** Error: broken\n** Warning: also this\n",
			expected: domain.StatusError,
		},
		{
			name:     "empty log",
			text:     "",
			expected: domain.StatusSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compilation(tt.text); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTranscript_MarkerTiers(t *testing.T) {
	tests := []struct {
		name     string
		tier     domain.Tier
		text     string
		expected domain.Status
	}{
		{
			name:     "simple tier pass",
			tier:     domain.TierSimple,
			text:     "# run -all\n# YAHOO!! All tests passed.\n",
			expected: domain.StatusSuccess,
		},
		{
			name:     "move tier pass",
			tier:     domain.TierMove,
			text:     "# YAHOO!! All tests passed.\n",
			expected: domain.StatusSuccess,
		},
		{
			name:     "explicit failure",
			tier:     domain.TierMove,
			text:     "# ERROR: heading never settled\n",
			expected: domain.StatusError,
		},
		{
			name:     "ERROR overrides the success marker",
			tier:     domain.TierMove,
			text:     "# ERROR: timeout\n# YAHOO!! All tests passed.\n",
			expected: domain.StatusError,
		},
		{
			name:     "no marker at all",
			tier:     domain.TierSimple,
			text:     "# simulation ran to completion\n",
			expected: domain.StatusUnknown,
		},
		{
			name:     "empty transcript",
			tier:     domain.TierMove,
			text:     "",
			expected: domain.StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transcript(tt.tier, tt.text); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTranscript_LogicTier(t *testing.T) {
	start := tour.Coordinate{Row: 0, Col: 0}
	solution, err := tour.Solve(start, tour.DefaultRows, tour.DefaultCols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# KnightsTour starting at coordinate: %s\n", start)
	for _, c := range solution[1:] {
		fmt.Fprintf(&sb, "# Coordinate on the board: %s\n", c)
	}
	good := sb.String()

	t.Run("matching tour passes", func(t *testing.T) {
		if got := Transcript(domain.TierLogic, good); got != domain.StatusSuccess {
			t.Errorf("expected success, got %s", got)
		}
	})

	t.Run("ERROR is checked before the oracle", func(t *testing.T) {
		text := "# ERROR: assertion failed\n" + good
		if got := Transcript(domain.TierLogic, text); got != domain.StatusError {
			t.Errorf("expected error, got %s", got)
		}
	})

	t.Run("missing tour data is unknown", func(t *testing.T) {
		if got := Transcript(domain.TierLogic, "# nothing useful\n"); got != domain.StatusUnknown {
			t.Errorf("expected unknown, got %s", got)
		}
	})
}
