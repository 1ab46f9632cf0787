package execution

import (
	"github.com/mattn/go-runewidth"

	"rasty/internal/domain"
)

// indentStep is how far each nesting level is shifted right
const indentStep = 2

// GetMaxOffset returns the widest indent plus name width over every test in
// the tree. Groups only contribute through their tests; an empty group is 0.
func GetMaxOffset(suite domain.TestSuite) int {
	return maxOffset(suite, 0)
}

func maxOffset(suite domain.TestSuite, indent int) int {
	switch node := suite.(type) {
	case *domain.Test:
		return indent + runewidth.StringWidth(node.Name)
	case *domain.TestGroup:
		widest := 0
		for _, child := range node.Children {
			if offset := maxOffset(child, indent+indentStep); offset > widest {
				widest = offset
			}
		}
		return widest
	}
	return 0
}
