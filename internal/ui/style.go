package ui

import "github.com/fatih/color"

// Style names a kind of decoration applied to report text
type Style int

const (
	// StyleSuccess marks passing tests and the all-passed summary (green)
	StyleSuccess Style = iota
	// StyleFailure marks failure message lines (red)
	StyleFailure
	// StyleFailureBold marks FAIL results and the failed summary (bold red)
	StyleFailureBold
)

// Styler decorates text for the console
type Styler interface {
	Colorize(text string, style Style) string
}

// ColorStyler renders styles as ANSI colors
type ColorStyler struct {
	success     *color.Color
	failure     *color.Color
	failureBold *color.Color
}

// NewColorStyler creates a ColorStyler. Colors follow color.NoColor unless
// EnableColor is called.
func NewColorStyler() *ColorStyler {
	return &ColorStyler{
		success:     color.New(color.FgGreen),
		failure:     color.New(color.FgRed),
		failureBold: color.New(color.FgRed, color.Bold),
	}
}

// EnableColor forces colored output even when stdout is not a terminal
func (s *ColorStyler) EnableColor() *ColorStyler {
	s.success.EnableColor()
	s.failure.EnableColor()
	s.failureBold.EnableColor()
	return s
}

// Colorize applies style to text
func (s *ColorStyler) Colorize(text string, style Style) string {
	switch style {
	case StyleSuccess:
		return s.success.Sprint(text)
	case StyleFailure:
		return s.failure.Sprint(text)
	case StyleFailureBold:
		return s.failureBold.Sprint(text)
	}
	return text
}

// PlainStyler leaves text untouched
type PlainStyler struct{}

// Colorize returns text as is
func (PlainStyler) Colorize(text string, _ Style) string {
	return text
}
