package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"rasty/internal/domain"
)

// Viewer displays test failures interactively
type Viewer interface {
	View(result domain.TestRunResult) error
}

// FailureViewer lists the failed tests of a run in a TUI, with the
// failure message of the selected test on the right.
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View blocks until the user leaves the viewer
func (fv *FailureViewer) View(result domain.TestRunResult) error {
	if len(result.Failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()
	view := newFailureView(result)

	view.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(view.details)
			return nil
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	view.details.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(view.list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(view.root, true).SetFocus(view.list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

type failureView struct {
	root    *tview.Flex
	header  *tview.TextView
	list    *tview.List
	details *tview.TextView
}

func newFailureView(result domain.TestRunResult) *failureView {
	failures := result.Failures

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(failure.TestName)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	header.SetText(fmt.Sprintf(" %d out of %d tests failed | Use ↑↓ to navigate, → to view details, ← to go back, q to exit ",
		result.Failed, result.Total))

	showDetails := func(index int) {
		if index >= 0 && index < len(failures) {
			details.SetText(formatFailureDetails(failures[index]))
		}
	}
	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		showDetails(index)
	})
	showDetails(0)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(body, 0, 1, true)

	return &failureView{root: root, header: header, list: list, details: details}
}

// formatFailureDetails formats a test failure using tview color tags
func formatFailureDetails(failure domain.TestFailure) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "[red]✗ Test: %s[white]\n", tview.Escape(failure.TestName))
	fmt.Fprintf(&builder, "[cyan]Duration: %s[white]\n\n", FormatSeconds(failure.Duration))
	fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	return builder.String()
}
