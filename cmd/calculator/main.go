package main

import (
	"fmt"
	"os"

	"rasty"
)

// Calculator is the code under test
type Calculator struct{}

func (Calculator) Add(a, b int) int      { return a + b }
func (Calculator) Subtract(a, b int) int { return a - b }
func (Calculator) Multiply(a, b int) int { return a * b }
func (Calculator) Divide(a, b int) int   { return a / b }

func expectEqual(actual, expected int) {
	if actual != expected {
		panic(fmt.Sprintf("expected %d, got %d", expected, actual))
	}
}

func calculatorSuite(calc Calculator) rasty.TestSuite {
	add := rasty.Group("Add",
		rasty.Test("Can add 2 and 1", func() { expectEqual(calc.Add(2, 1), 3) }),
		rasty.Test("Can add -1 and 1", func() { expectEqual(calc.Add(-1, 1), 0) }),
	)

	subtract := rasty.Group("Subtract",
		rasty.Test("Can subtract 1 from 1", func() { expectEqual(calc.Subtract(1, 1), 0) }),
		rasty.Test("Can subtract 2 from 1", func() { expectEqual(calc.Subtract(1, 2), -1) }),
		rasty.Test("Can subtract -1 from 1", func() { expectEqual(calc.Subtract(1, -1), 2) }),
	)

	multiply := rasty.Group("Multiply",
		rasty.Test("Can multiply 1 and 1", func() { expectEqual(calc.Multiply(1, 1), 1) }),
		rasty.Test("Can multiply 2 and 1", func() { expectEqual(calc.Multiply(2, 1), 2) }),
		rasty.Test("Can multiply -1 and 1", func() { expectEqual(calc.Multiply(-1, 1), -1) }),
	)

	divide := rasty.Group("Divide",
		rasty.Test("Can divide 1 by 1", func() { expectEqual(calc.Divide(1, 1), 1) }),
		rasty.Test("Can divide 2 by 1", func() { expectEqual(calc.Divide(2, 1), 2) }),
		rasty.TestE("Can divide -1 by 1", func() error {
			if got := calc.Divide(-1, 1); got != -1 {
				return fmt.Errorf("expected -1, got %d", got)
			}
			return nil
		}),
	)

	return rasty.Group("Calculator", add, subtract, multiply, divide)
}

func main() {
	result, err := rasty.Execute(calculatorSuite(Calculator{}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !result.OK() {
		os.Exit(1)
	}
}
