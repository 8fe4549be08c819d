package domain

import "fmt"

// RunMode selects the toolchain invocation template for a run.
type RunMode int

const (
	// ModeCommandLine runs headless; waveforms are captured only when a
	// test fails, for offline debugging.
	ModeCommandLine RunMode = iota
	// ModeSaveWaves always captures waveforms and logs to file.
	ModeSaveWaves
	// ModeGUI opens an interactive waveform session.
	ModeGUI
	// ModeViewWaves opens previously saved waveforms without compiling
	// or simulating anything.
	ModeViewWaves
)

// ParseRunMode maps the numeric -m flag onto a RunMode.
func ParseRunMode(n int) (RunMode, error) {
	switch n {
	case 0:
		return ModeCommandLine, nil
	case 1:
		return ModeSaveWaves, nil
	case 2:
		return ModeGUI, nil
	case 3:
		return ModeViewWaves, nil
	default:
		return 0, fmt.Errorf("invalid mode %d: must be 0 (command-line), 1 (save waves), 2 (GUI) or 3 (view saved waves)", n)
	}
}

func (m RunMode) String() string {
	switch m {
	case ModeCommandLine:
		return "command-line"
	case ModeSaveWaves:
		return "save-waves"
	case ModeGUI:
		return "gui"
	case ModeViewWaves:
		return "view-waves"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// RetainsWaves reports whether this mode keeps a waveform artifact
// around after the run.
func (m RunMode) RetainsWaves() bool {
	return m == ModeSaveWaves || m == ModeGUI
}
