package rasty

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	suite := Group("Math",
		Test("adds", func() {}),
		TestE("divides", func() error { return errors.New("division by zero") }),
		Group("Empty"),
	)

	result := NewRunner().Run(suite)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Math/divides", result.Failures[0].TestName)
	assert.Equal(t, "division by zero", result.Failures[0].Message)
}

func TestExecute_ListCommand(t *testing.T) {
	rootCmd, cmds := newRootCommand(Group("Math", Test("adds", func() {})))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list", "--no-color"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Found 1 test(s):")
	assert.Equal(t, TestRunResult{}, cmds.Run.Result())
}

func TestExecute_RunCommand(t *testing.T) {
	rootCmd, cmds := newRootCommand(Group("Math", Test("fails", func() { panic(7) })))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--no-color"})

	require.NoError(t, rootCmd.Execute())

	result := cmds.Run.Result()
	assert.False(t, result.OK())
	assert.Contains(t, out.String(), "    "+FallbackMessage+"\n")
}
