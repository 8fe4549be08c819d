// Package classify maps raw simulator log text onto a verdict. Both
// classifiers are total over arbitrary text: a log with none of the
// recognized markers is Unknown, never an error of the classifier.
package classify

import (
	"strings"

	"ktr/internal/domain"
	"ktr/internal/tour"
)

// Markers the toolchain and the testbenches emit. These are bit-exact
// contracts; the testbench task library prints them verbatim.
const (
	compileErrorMarker   = "Error:"
	compileWarningMarker = "Warning:"
	transcriptError      = "ERROR"
	transcriptSuccess    = "YAHOO!! All tests passed."
)

// Compilation classifies a compilation log. Precedence is strict:
// Error beats Warning beats Success, regardless of position or count.
func Compilation(text string) domain.Status {
	switch {
	case strings.Contains(text, compileErrorMarker):
		return domain.StatusError
	case strings.Contains(text, compileWarningMarker):
		return domain.StatusWarning
	default:
		return domain.StatusSuccess
	}
}

// Transcript classifies a simulation transcript for the given tier.
// The ERROR check always runs first and overrides everything else.
// Simple and move tests print a literal success marker; logic tests
// have input-dependent output, so their transcript is handed to the
// tour verifier instead.
func Transcript(tier domain.Tier, text string) domain.Status {
	if strings.Contains(text, transcriptError) {
		return domain.StatusError
	}

	if tier == domain.TierLogic {
		return tour.VerifyTranscript(text)
	}

	if strings.Contains(text, transcriptSuccess) {
		return domain.StatusSuccess
	}
	return domain.StatusUnknown
}
