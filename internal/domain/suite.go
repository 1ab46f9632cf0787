package domain

// Assertion is the deferred body of a single test.
// Returning nil means the test passed; a non-nil error or a panic means it failed.
type Assertion func() error

// TestSuite is a node of a test tree: either a *Test or a *TestGroup
type TestSuite interface {
	suiteNode()
}

// Test is a leaf of the tree, a named assertion
type Test struct {
	Name      string
	Assertion Assertion
}

// TestGroup is a named, ordered list of child nodes. Children may be empty.
type TestGroup struct {
	Name     string
	Children []TestSuite
}

func (*Test) suiteNode()      {}
func (*TestGroup) suiteNode() {}

// NewTest creates a leaf whose body signals failure by panicking
func NewTest(name string, body func()) *Test {
	return &Test{
		Name: name,
		Assertion: func() error {
			body()
			return nil
		},
	}
}

// NewTestE creates a leaf whose body returns an error on failure
func NewTestE(name string, body func() error) *Test {
	return &Test{Name: name, Assertion: Assertion(body)}
}

// NewTestGroup creates a group with the given children in display order
func NewTestGroup(name string, children ...TestSuite) *TestGroup {
	return &TestGroup{Name: name, Children: children}
}

// CountTests returns the number of Test leaves under suite
func CountTests(suite TestSuite) int {
	switch node := suite.(type) {
	case *Test:
		return 1
	case *TestGroup:
		total := 0
		for _, child := range node.Children {
			total += CountTests(child)
		}
		return total
	}
	return 0
}
