package ui

import (
	"fmt"

	"github.com/fatih/color"

	"ktr/internal/config"
	"ktr/internal/domain"
)

// Formatter formats and displays output.
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a Formatter.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintResult prints the single terminal status line for one job.
func (f *Formatter) PrintResult(r domain.TestResult) {
	name := r.Test.Name()
	job := f.config.NewJobContext(r.Test)

	if r.Compilation == domain.StatusError {
		color.Red("%s: Compilation failed. Check the log file for details: %s", name, job.CompileLog)
		return
	}
	if r.Err != nil {
		color.Red("%s: %v", name, r.Err)
		return
	}

	switch r.Transcript {
	case domain.StatusSuccess:
		color.Green("%s: YAHOO!! All tests passed.", name)
	case domain.StatusError:
		color.Red("%s: Test failed. Saving waveforms for later debug...", name)
	default:
		color.Yellow("%s: Unknown status. Check the log file saved to %s.", name, job.TranscriptLog)
	}

	if r.Compilation == domain.StatusWarning {
		color.Yellow("%s: Compilation has warnings. Check the log file for details: %s", name, job.CompileLog)
	}
}

// PrintViewResult prints the status line for a waveform-viewing job.
func (f *Formatter) PrintViewResult(r domain.TestResult) {
	if r.Err != nil {
		color.Red("%s: %v", r.Test.Name(), r.Err)
		return
	}
	color.Cyan("%s: Viewed saved waveforms.", r.Test.Name())
}

// PrintSummary displays the run statistics table.
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Regression Run Summary                   ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	rows := []struct {
		label string
		print func()
	}{
		{"Total Tests", func() { color.White("%-27d │\n", meta.TotalTests) }},
		{"Passed", func() { color.Green("%-27d │\n", meta.PassedTests) }},
		{"Failed", func() { color.Red("%-27d │\n", meta.FailedTests) }},
		{"Unknown", func() { color.Yellow("%-27d │\n", meta.UnknownTests) }},
		{"Compile Warnings", func() { color.Yellow("%-27d │\n", meta.CompileWarnings) }},
		{"Duration", func() { color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds)) }},
		{"Workers", func() { color.White("%-27d │\n", meta.Workers) }},
		{"Mode", func() { color.White("%-27s │\n", meta.Mode) }},
		{"Timestamp", func() { color.White("%-27s │\n", meta.Timestamp) }},
	}
	for i, row := range rows {
		fmt.Printf("│ %-31s │ ", row.label)
		row.print()
		if i < len(rows)-1 {
			fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 && meta.UnknownTests == 0 {
		color.Green("✓ All tests passed!")
		return
	}
	color.Red("✗ %d test(s) failed, %d unknown", meta.FailedTests, meta.UnknownTests)
	for _, rec := range output.Details {
		fmt.Printf("  %s ", rec.Name)
		switch rec.Status {
		case "unknown":
			color.Yellow("[%s] %s", rec.Status, rec.TranscriptLog)
		default:
			color.Red("[%s] %s", rec.Status, rec.TranscriptLog)
		}
	}
}

// PrintTestList prints the descriptors a selection resolves to.
func (f *Formatter) PrintTestList(tests []domain.TestDescriptor) {
	color.Cyan("Found %d test(s):\n", len(tests))
	for _, t := range tests {
		fmt.Printf("  %3d  ", t.ID)
		color.White("%-22s %s", t.Name(), t.Tier)
	}
}
