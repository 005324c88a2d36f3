package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBenchmark = `<net grid_size="5" pin_count="3">
  <point type="pin" x="0" y="0"/>
  <point type="pin" x="4" y="0"/>
  <point type="pin" x="4" y="4"/>
</net>`

func TestRunBuild_ProducesSolutionFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.xml")
	outputPath := filepath.Join(dir, "out.xml")
	require.NoError(os.WriteFile(inputPath, []byte(testBenchmark), 0o644))

	err := runBuild(rootCmd, []string{inputPath, outputPath})
	require.NoError(err)

	out, err := os.ReadFile(outputPath)
	require.NoError(err)
	require.Contains(string(out), `run_id="`)
	require.Contains(string(out), `layer="m2"`)
}

func TestRunBuild_MalformedCoordinateExitsAsSentinel(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.xml")
	outputPath := filepath.Join(dir, "out.xml")
	bad := `<net grid_size="2" pin_count="1"><point type="pin" x="9" y="9"/></net>`
	require.NoError(os.WriteFile(inputPath, []byte(bad), 0o644))

	err := runBuild(rootCmd, []string{inputPath, outputPath})
	require.Error(err)
	require.ErrorIs(err, errMalformedBenchmark)
}

func TestExitCodeFor(t *testing.T) {
	require := require.New(t)
	require.Equal(2, exitCodeFor(errMalformedBenchmark))
	require.Equal(1, exitCodeFor(os.ErrNotExist))
}
