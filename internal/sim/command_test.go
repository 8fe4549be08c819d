package sim

import (
	"strings"
	"testing"

	"ktr/internal/config"
	"ktr/internal/domain"
)

func newTestRunner(t *testing.T) (*Runner, *config.Config) {
	t.Helper()
	cfg := config.New()
	cfg.RootDir = "/proj"
	return NewRunner(cfg), cfg
}

func jobFor(cfg *config.Config, id int, tier domain.Tier) domain.JobContext {
	return cfg.NewJobContext(domain.TestDescriptor{
		ID:   id,
		Tier: tier,
		Path: "/proj/tests/" + tier.String() + "/KnightsTour_tb_x.sv",
	})
}

func TestWaveCommand(t *testing.T) {
	t.Run("post-synthesis band", func(t *testing.T) {
		cmd := WaveCommand(0)
		if !strings.Contains(cmd, "add wave iDUT/TX;") {
			t.Errorf("test 0 should trace the UART lines: %s", cmd)
		}
		if strings.Contains(cmd, "tour_go") {
			t.Errorf("test 0 should not trace tour signals: %s", cmd)
		}
	})

	t.Run("calibration band", func(t *testing.T) {
		if !strings.Contains(WaveCommand(1), "iDUT/cal_done") {
			t.Error("test 1 should trace cal_done")
		}
	})

	t.Run("move band shares one command", func(t *testing.T) {
		if WaveCommand(2) != WaveCommand(14) {
			t.Error("all move tests should share the same wave command")
		}
		if strings.Contains(WaveCommand(2), "tour_go") {
			t.Error("move tests should not trace tour signals")
		}
	})

	t.Run("logic band adds tour signals", func(t *testing.T) {
		cmd := WaveCommand(20)
		for _, sig := range []string{"iDUT/iCMD/tour_go", "iDUT/iTL/done", "iDUT/fanfare_go"} {
			if !strings.Contains(cmd, "add wave "+sig+";") {
				t.Errorf("logic band missing %s", sig)
			}
		}
	})
}

func TestCompileCommand(t *testing.T) {
	r, cfg := newTestRunner(t)

	t.Run("first run creates the library", func(t *testing.T) {
		cmd := r.compileCommand(jobFor(cfg, 3, domain.TierMove), false)
		if !strings.Contains(cmd, "vlib TEST_3;") {
			t.Errorf("expected vlib for a fresh library: %s", cmd)
		}
		if !strings.Contains(cmd, "vlog -work TEST_3") {
			t.Errorf("expected vlog into the private library: %s", cmd)
		}
	})

	t.Run("cached library skips vlib", func(t *testing.T) {
		cmd := r.compileCommand(jobFor(cfg, 3, domain.TierMove), true)
		if strings.Contains(cmd, "vlib") {
			t.Errorf("cached library must not be recreated: %s", cmd)
		}
		if !strings.HasPrefix(cmd, "vlog -logfile") {
			t.Errorf("expected direct vlog invocation: %s", cmd)
		}
	})

	t.Run("test 0 uses the netlist file set", func(t *testing.T) {
		cmd := r.compileCommand(jobFor(cfg, 0, domain.TierSimple), false)
		if !strings.Contains(cmd, "-timescale=1ns/1ps") {
			t.Errorf("test 0 needs the explicit timescale: %s", cmd)
		}
		if !strings.Contains(cmd, "post_synthesis") {
			t.Errorf("test 0 should compile the synthesized netlist: %s", cmd)
		}
	})

	t.Run("regular tests compile the RTL", func(t *testing.T) {
		cmd := r.compileCommand(jobFor(cfg, 7, domain.TierMove), true)
		if !strings.Contains(cmd, "pre_synthesis") {
			t.Errorf("expected RTL sources: %s", cmd)
		}
		if strings.Contains(cmd, "timescale") {
			t.Errorf("no timescale override for RTL tests: %s", cmd)
		}
	})
}

func TestSimulationCommands(t *testing.T) {
	r, cfg := newTestRunner(t)

	t.Run("headless quits after the run", func(t *testing.T) {
		cmd := r.headlessCommand(jobFor(cfg, 5, domain.TierMove))
		if !strings.Contains(cmd, "vsim -c TEST_5.KnightsTour_tb") {
			t.Errorf("wrong invocation: %s", cmd)
		}
		if !strings.Contains(cmd, "quit -f;") {
			t.Errorf("headless run must quit: %s", cmd)
		}
	})

	t.Run("test 0 resolves the cell library", func(t *testing.T) {
		cmd := r.headlessCommand(jobFor(cfg, 0, domain.TierSimple))
		if !strings.Contains(cmd, "-t ns") || !strings.Contains(cmd, "-Lf "+cfg.CellLibraryPath()) {
			t.Errorf("test 0 needs timing and the cell library: %s", cmd)
		}
	})

	t.Run("wave capture writes the format file", func(t *testing.T) {
		job := jobFor(cfg, 16, domain.TierLogic)
		cmd := r.waveCommand(job, true)
		if !strings.Contains(cmd, "-wlf "+job.WaveFile) {
			t.Errorf("expected wlf output: %s", cmd)
		}
		if !strings.Contains(cmd, "write format wave") {
			t.Errorf("expected wave format dump: %s", cmd)
		}
		if !strings.Contains(cmd, "add wave iDUT/iCMD/tour_go;") {
			t.Errorf("expected logic-band signals: %s", cmd)
		}
		if !strings.HasSuffix(cmd, "quit -f;'") {
			t.Errorf("capture run must quit: %s", cmd)
		}
	})

	t.Run("GUI session stays open", func(t *testing.T) {
		cmd := r.waveCommand(jobFor(cfg, 16, domain.TierLogic), false)
		if strings.Contains(cmd, "quit -f;") {
			t.Errorf("GUI run must not quit: %s", cmd)
		}
	})

	t.Run("view reopens the saved artifacts", func(t *testing.T) {
		job := jobFor(cfg, 4, domain.TierMove)
		cmd := r.viewCommand(job)
		if !strings.Contains(cmd, "vsim -view "+job.WaveFile) {
			t.Errorf("expected view invocation: %s", cmd)
		}
		if !strings.Contains(cmd, "-do "+job.WaveFormatFile) {
			t.Errorf("expected saved window format: %s", cmd)
		}
	})
}
