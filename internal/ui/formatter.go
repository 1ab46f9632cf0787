package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/list"

	"rasty/internal/domain"
)

// Formatter prints a test tree without running it
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintTestList prints the number of tests followed by the tree of groups and tests
func (f *Formatter) PrintTestList(out io.Writer, suite domain.TestSuite) error {
	count := domain.CountTests(suite)
	if _, err := fmt.Fprintln(out, color.GreenString("Found %d test(s):", count)); err != nil {
		return fmt.Errorf("write test list: %w", err)
	}
	if _, err := fmt.Fprintln(out, RenderTree(suite)); err != nil {
		return fmt.Errorf("write test list: %w", err)
	}
	return nil
}

// RenderTree renders suite as a connected tree, one node per line
func RenderTree(suite domain.TestSuite) string {
	w := list.NewWriter()
	w.SetStyle(list.StyleConnectedRounded)
	appendNode(w, suite)
	return w.Render()
}

func appendNode(w list.Writer, suite domain.TestSuite) {
	switch node := suite.(type) {
	case *domain.Test:
		w.AppendItem(node.Name)
	case *domain.TestGroup:
		w.AppendItem(color.CyanString(node.Name))
		if len(node.Children) == 0 {
			return
		}
		w.Indent()
		for _, child := range node.Children {
			appendNode(w, child)
		}
		w.UnIndent()
	}
}
