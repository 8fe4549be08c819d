package sim

import (
	"fmt"
	"path/filepath"

	"ktr/internal/domain"
)

// Command construction for the vlib/vlog/vsim toolchain. Every command
// is built from absolute paths so jobs never depend on a shared
// working directory; the only relative piece is the work library name,
// which the simulator resolves against the invocation's Dir.

// compileSources lists the files handed to vlog for a test. Test 0 is
// the post-synthesis netlist run: it swaps the RTL for the synthesized
// gates plus the handful of RTL blocks kept around them and needs an
// explicit timescale.
func (r *Runner) compileSources(job domain.JobContext) string {
	design := r.cfg.DesignDir()
	tests := r.cfg.TestDir()

	if job.Test.ID == 0 {
		return fmt.Sprintf("-timescale=1ns/1ps %s %s %s %s %s %s",
			filepath.Join(tests, "*.sv"),
			filepath.Join(design, "pre_synthesis", "UART.sv"),
			filepath.Join(design, "pre_synthesis", "*_r*"),
			filepath.Join(design, "pre_synthesis", "*_tx*"),
			filepath.Join(design, "post_synthesis", "*.vg"),
			job.Test.Path,
		)
	}
	return fmt.Sprintf("%s %s %s",
		filepath.Join(design, "pre_synthesis", "*.sv"),
		filepath.Join(tests, "*.sv"),
		job.Test.Path,
	)
}

// compileCommand builds the compilation invocation. The first run of a
// test id creates its private work library with vlib; later runs reuse
// the library as a compilation cache and go straight to vlog.
func (r *Runner) compileCommand(job domain.JobContext, libExists bool) string {
	sources := r.compileSources(job)
	if !libExists {
		return fmt.Sprintf("vsim -c -logfile %s -do 'vlib %s; vlog -work %s -vopt -stats=none %s; quit -f;'",
			job.CompileLog, job.WorkLib, job.WorkLib, sources)
	}
	return fmt.Sprintf("vlog -logfile %s -work %s -vopt -stats=none %s",
		job.CompileLog, job.WorkLib, sources)
}

// headlessCommand builds the plain command-line simulation: run to
// completion, flush the log, quit. Test 0 resolves against the cell
// library and runs at ns resolution.
func (r *Runner) headlessCommand(job domain.JobContext) string {
	if job.Test.ID == 0 {
		return fmt.Sprintf("vsim -c %s.KnightsTour_tb -logfile %s -t ns -Lf %s -do 'run -all; log -flush /*; quit -f;'",
			job.WorkLib, job.TranscriptLog, r.cfg.CellLibraryPath())
	}
	return fmt.Sprintf("vsim -c %s.KnightsTour_tb -logfile %s -do 'run -all; log -flush /*; quit -f;'",
		job.WorkLib, job.TranscriptLog)
}

// waveCommand builds the waveform-capturing simulation used by the
// save-waves and GUI modes and by the post-failure debug re-run. When
// quit is true the simulator exits after writing the wave format file;
// the GUI session stays open.
func (r *Runner) waveCommand(job domain.JobContext, quit bool) string {
	timing := ""
	if job.Test.ID == 0 {
		timing = fmt.Sprintf(" -t ns -Lf %s", r.cfg.CellLibraryPath())
	}

	cmd := fmt.Sprintf("vsim -wlf %s %s.KnightsTour_tb -logfile %s%s -voptargs='+acc' "+
		"-do '%s run -all; write format wave -window .main_pane.wave.interior.cs.body.pw.wf %s; log -flush /*;",
		job.WaveFile, job.WorkLib, job.TranscriptLog, timing,
		WaveCommand(job.Test.ID), job.WaveFormatFile)
	if quit {
		cmd += " quit -f;"
	}
	return cmd + "'"
}

// viewCommand reopens a previously saved waveform with its window
// format. No compilation or simulation happens in this mode.
func (r *Runner) viewCommand(job domain.JobContext) string {
	return fmt.Sprintf("vsim -view %s -do %s", job.WaveFile, job.WaveFormatFile)
}
