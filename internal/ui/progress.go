package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"rasty/internal/domain"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar writing to w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update updates the progress bar with success and failure counts
func (p *ProgressBar) Update(successCount, failCount int) {
	_ = p.bar.Set(successCount + failCount)
	p.bar.Describe(describe(successCount, failCount))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

func describe(successCount, failCount int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", successCount) +
		" | " +
		color.RedString("failed: %d]", failCount)
}

// ProgressReporter shows a progress bar instead of per-test lines and
// prints the same summary as TreeReporter once the run is over.
type ProgressReporter struct {
	out         io.Writer
	progressOut io.Writer
	styler      Styler

	bar    *ProgressBar
	passed int
	failed int
}

// NewProgressReporter creates a ProgressReporter. The bar is drawn on
// progressOut, the summary is printed on out.
func NewProgressReporter(out, progressOut io.Writer, styler Styler) *ProgressReporter {
	return &ProgressReporter{
		out:         out,
		progressOut: progressOut,
		styler:      styler,
	}
}

// Started resets the counters and draws an empty bar
func (p *ProgressReporter) Started(total int) {
	p.passed, p.failed = 0, 0
	p.bar = nil
	if total > 0 {
		p.bar = NewProgressBar(total, p.progressOut)
	}
}

func (p *ProgressReporter) GroupStarted(string, int)     {}
func (p *ProgressReporter) TestStarted(string, int, int) {}

// TestFinished advances the bar
func (p *ProgressReporter) TestFinished(result domain.AssertionResult, _ time.Duration, _ int) {
	if result.IsSuccess() {
		p.passed++
	} else {
		p.failed++
	}
	if p.bar != nil {
		p.bar.Update(p.passed, p.failed)
	}
}

// Finished closes the bar and prints the summary
func (p *ProgressReporter) Finished(result domain.TestRunResult) {
	if p.bar != nil {
		p.bar.Finish()
	}
	printSummary(p.out, p.styler, result)
}
