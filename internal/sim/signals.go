package sim

import (
	"fmt"
	"strings"
)

// Signal bands: each band of test numbers traces its own default set
// of signals. The bands follow the testbench families, not the tiers
// exactly: tests 0 and 1 are both simple-tier but exercise different
// hardware, so they get separate lists.
type signalBand int

const (
	bandPostSynth signalBand = iota // test 0
	bandCal                         // test 1
	bandMove                        // tests 2-14
	bandLogic                       // tests 15+
)

func bandFor(testNum int) signalBand {
	switch {
	case testNum == 0:
		return bandPostSynth
	case testNum == 1:
		return bandCal
	case testNum <= 14:
		return bandMove
	default:
		return bandLogic
	}
}

var bandSignals = map[signalBand][]string{
	bandPostSynth: {
		"iDUT/clk", "iDUT/RST_n", "iDUT/TX", "iDUT/RX", "iRMT/resp", "iRMT/resp_rdy",
	},
	bandCal: {
		"iDUT/clk", "iDUT/RST_n", "iDUT/cal_done", "iPHYS/iNEMO/NEMO_setup",
		"iDUT/iTC/send_resp", "iRMT/resp", "iRMT/resp_rdy",
	},
	bandMove: {
		"iDUT/clk", "iDUT/RST_n", "iPHYS/xx", "iPHYS/yy", "iDUT/iNEMO/heading",
		"iPHYS/heading_robot", "iDUT/iCMD/desired_heading", "iPHYS/omega_sum",
		"iPHYS/cntrIR_n", "iDUT/iCMD/lftIR", "iDUT/iCMD/cntrIR", "iDUT/iCMD/rghtIR",
		"iDUT/iCMD/error_abs", "iDUT/iCMD/square_cnt", "iDUT/iCMD/move_done",
		"iDUT/iTC/state", "iDUT/iTC/send_resp", "iRMT/resp", "iRMT/resp_rdy",
		"iDUT/iTC/mv_indx", "iDUT/iTC/move", "iDUT/iCMD/pulse_cnt", "iDUT/iCMD/state",
	},
	bandLogic: {
		"iDUT/clk", "iDUT/RST_n", "iPHYS/xx", "iPHYS/yy", "iDUT/iNEMO/heading",
		"iPHYS/heading_robot", "iDUT/iCMD/desired_heading", "iPHYS/omega_sum",
		"iPHYS/cntrIR_n", "iDUT/iCMD/lftIR", "iDUT/iCMD/cntrIR", "iDUT/iCMD/rghtIR",
		"iDUT/iCMD/error_abs", "iDUT/iCMD/square_cnt", "iDUT/iCMD/move_done",
		"iDUT/iTC/state", "iDUT/iTC/send_resp", "iRMT/resp", "iRMT/resp_rdy",
		"iDUT/iTC/mv_indx", "iDUT/iTC/move", "iDUT/iCMD/pulse_cnt", "iDUT/iCMD/state",
		"iDUT/iCMD/tour_go", "iDUT/iTL/done", "iDUT/fanfare_go", "iDUT/ISPNG/state",
	},
}

// waveCommands is precomputed at startup. The band key space is tiny
// and fixed, so an immutable table replaces any runtime memoization.
var waveCommands = buildWaveCommands()

func buildWaveCommands() map[signalBand]string {
	cmds := make(map[signalBand]string, len(bandSignals))
	for band, signals := range bandSignals {
		var sb strings.Builder
		for _, sig := range signals {
			fmt.Fprintf(&sb, "add wave %s; ", sig)
		}
		cmds[band] = strings.TrimSuffix(sb.String(), " ")
	}
	return cmds
}

// WaveCommand returns the add-wave command prefix for a test number.
func WaveCommand(testNum int) string {
	return waveCommands[bandFor(testNum)]
}
