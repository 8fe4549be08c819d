package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ktr/internal/config"
	"ktr/internal/domain"
	"ktr/internal/storage"
)

// maxLogLines caps how much of a transcript the details pane shows.
// Simulator transcripts can run to megabytes; the tail is where the
// failure evidence lives.
const maxLogLines = 400

// LogViewer displays the failed and unknown tests of the last run in
// an interactive TUI, with their transcript text alongside.
type LogViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewLogViewer creates a LogViewer.
func NewLogViewer(cfg *config.Config, st storage.Storage) *LogViewer {
	return &LogViewer{config: cfg, storage: st}
}

// View opens the TUI over the given run output.
func (lv *LogViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No failed or unknown tests in the last run!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, rec := range results.Details {
		if rec.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return lv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		rec := results.Details[index]
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s (%s)[white]", index+1, rec.Name, rec.Status)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s [red](%s)[white]", index+1, rec.Name, rec.Status)
	}

	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	logView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(logView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed Tests (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → view log, ← back, Ctrl+C exit ",
			len(results.Details), countUnresolved()))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results.Details) {
			return
		}
		rec := results.Details[index]
		statsView.SetText(fmt.Sprintf(
			"[cyan]test:[white] [yellow]%s[white]  [cyan]tier:[white] %s  [cyan]status:[white] [red]%s[white]\n[cyan]log:[white] %s",
			rec.Name, rec.Tier, rec.Status, rec.TranscriptLog))
		logView.SetText(lv.formatRecord(rec))
		logView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(logView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					if err := saveResolved(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	logView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatRecord renders one record's log evidence for the details pane.
func (lv *LogViewer) formatRecord(rec domain.TestRecord) string {
	var builder strings.Builder

	if rec.Error != "" {
		fmt.Fprintf(&builder, "[yellow]Harness error:[white]\n%s\n\n", tview.Escape(rec.Error))
	}

	path := rec.TranscriptLog
	if strings.HasPrefix(rec.Status, "compile-") {
		path = rec.CompileLog
	}

	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(&builder, "[red]Could not read log %s: %v[white]\n", path, err)
		return builder.String()
	}

	lines := strings.Split(string(text), "\n")
	if len(lines) > maxLogLines {
		fmt.Fprintf(&builder, "[gray]... %d earlier lines omitted ...[white]\n", len(lines)-maxLogLines)
		lines = lines[len(lines)-maxLogLines:]
	}
	builder.WriteString(tview.Escape(strings.Join(lines, "\n")))
	return builder.String()
}
