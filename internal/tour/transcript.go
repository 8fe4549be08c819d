package tour

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"ktr/internal/domain"
)

// Labels the logic-tier testbench prints before each coordinate pair.
// The classifier depends on these exact substrings.
const (
	startLabel  = "KnightsTour starting at coordinate:"
	squareLabel = "Coordinate on the board:"
)

var coordRE = regexp.MustCompile(`\((\d+),\s*(\d+)\)`)

var (
	errNoStart   = errors.New("starting coordinate not found in transcript")
	errNoSquares = errors.New("no board coordinates found in transcript")
)

// ExtractTranscript pulls the starting square and the visited-square
// sequence out of a raw transcript, in file order. A missing start or
// an empty visited list is a reported failure, not a panic; transcripts
// of crashed simulations routinely lack both.
func ExtractTranscript(text string) (Coordinate, []Coordinate, error) {
	var start Coordinate
	var haveStart bool
	var squares []Coordinate

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(line, startLabel):
			if c, ok := parseCoordinate(line); ok {
				start = c
				haveStart = true
			}
		case strings.Contains(line, squareLabel):
			if c, ok := parseCoordinate(line); ok {
				squares = append(squares, c)
			}
		}
	}

	if !haveStart {
		return Coordinate{}, nil, errNoStart
	}
	if len(squares) == 0 {
		return Coordinate{}, nil, errNoSquares
	}
	return start, squares, nil
}

func parseCoordinate(line string) (Coordinate, bool) {
	m := coordRE.FindStringSubmatch(line)
	if m == nil {
		return Coordinate{}, false
	}
	row, err1 := strconv.Atoi(m[1])
	col, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return Coordinate{}, false
	}
	return Coordinate{Row: row, Col: col}, true
}

// VerifyTranscript recomputes the canonical tour from the transcript's
// starting square and diffs it, pointwise and in order, against the
// logged sequence (with the starting square dropped from the computed
// path, since the hardware does not re-log it). Malformed transcripts
// and infeasible starts come back Unknown rather than Error: they say
// nothing about whether the hardware toured correctly.
func VerifyTranscript(text string) domain.Status {
	start, logged, err := ExtractTranscript(text)
	if err != nil {
		return domain.StatusUnknown
	}

	solution, err := Solve(start, DefaultRows, DefaultCols)
	if err != nil {
		return domain.StatusUnknown
	}

	want := solution[1:]
	if len(logged) != len(want) {
		return domain.StatusError
	}
	for i := range want {
		if logged[i] != want[i] {
			return domain.StatusError
		}
	}
	return domain.StatusSuccess
}
