// Package main provides tests for the mcpi CLI.
package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/mcpi/internal/cli"
	"github.com/leapstack-labs/mcpi/internal/cli/config"
	"github.com/leapstack-labs/mcpi/internal/cli/output"
	"github.com/leapstack-labs/mcpi/internal/cli/testutil"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command in an empty working directory.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mcpi v")
}

func TestHelpCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "--help")
	require.NoError(t, err)

	for _, expected := range []string{"run", "tui", "repl", "convergence", "version", "completion"} {
		assert.Contains(t, out, expected)
	}
}

func TestRunCommand_JSON(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "run", "10000", "--seed", "42", "-o", "json")
	require.NoError(t, err)

	var rep output.RunReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 10000, rep.NumPoints)
	assert.Equal(t, uint64(42), rep.Seed)
	assert.InDelta(t, 4*float64(rep.InsideCount)/10000, rep.PiEstimate, 1e-12)
	assert.InDelta(t, 3.14, rep.PiEstimate, 0.1)
}

func TestRunCommand_PointsFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "run", "--points", "64", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "num_points: 64")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	testutil.WriteConfig(t, `
points: 128
output: json
profiles:
  big:
    points: 4096
`)

	out, err := runCLI(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, `"num_points": 128`)

	out, err = runCLI(t, "run", "--profile", "big")
	require.NoError(t, err)
	assert.Contains(t, out, `"num_points": 4096`)
}

func TestRunCommand_InvalidInput(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCLI(t, "run", "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, estimator.ErrInvalidInput)
}

func TestInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MCPI_OUTPUT", "html")

	_, err := runCLI(t, "run", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output must be one of")
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "run", "10", "--seed", "1", "-v", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "starting run")
	assert.Contains(t, out, "run complete")
}

func TestConvergenceCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "convergence", "--sizes", "10,100", "--trials", "3", "--seed", "2", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Convergence")
	assert.Contains(t, out, "| Points |")
	assert.Equal(t, 2, strings.Count(out, "| 3 |"), "one row per size")
}

func TestCompletionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "mcpi")

	_, err = runCLI(t, "completion", "tcsh")
	assert.Error(t, err)
}
