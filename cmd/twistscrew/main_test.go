package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCmd(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSolveFlags(t *testing.T) {
	code, out, stderr := runCmd(t, "solve", "--w", "0,0,1", "--v", "0,-2,0")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "   - q: [2.0000,0.0000,0.0000]^T\n")
	assert.Contains(t, out, "   - h: 0.0000\n")
	assert.Contains(t, out, "   where theta_dot: 1.0000\n")
}

func TestSolvePositional(t *testing.T) {
	code, out, stderr := runCmd(t, "solve", "--precision", "2", "--", "0", "0", "2", "-2", "-4", "0")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "   - q: [2.00,-1.00,0.00]^T\n")
	assert.Contains(t, out, "   where theta_dot: 2.00\n")
}

func TestSolveYAML(t *testing.T) {
	code, out, stderr := runCmd(t, "solve", "-f", "yaml", "--w", "0,0,0", "--v", "1,0,0")
	require.Equal(t, 0, code, stderr)
	var doc struct {
		Screw struct {
			S           []float64 `yaml:"s_hat"`
			ThetaDot    float64   `yaml:"theta_dot"`
			Translation bool      `yaml:"pure_translation"`
		} `yaml:"screw"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []float64{1, 0, 0}, doc.Screw.S)
	assert.Equal(t, 1.0, doc.Screw.ThetaDot)
	assert.True(t, doc.Screw.Translation)
	assert.Contains(t, out, "h: .nan")
}

func TestSolveErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		args []string
		msg  string
	}{
		{name: "zero twist", args: []string{"solve", "--w", "0,0,0", "--v", "0,0,0"}, msg: "zero angular and linear velocity"},
		{name: "nan", args: []string{"solve", "--", "NaN", "0", "0", "1", "0", "0"}, msg: "non-finite"},
		{name: "bad number", args: []string{"solve", "--", "0", "0", "x", "1", "0", "0"}, msg: "argument 3"},
		{name: "missing v", args: []string{"solve", "--w", "0,0,1"}, msg: "need 3 components"},
		{name: "arg count", args: []string{"solve", "--", "1", "2"}, msg: "want 0 or 6 arguments"},
		{name: "bad format", args: []string{"solve", "-f", "xml", "--w", "0,0,1", "--v", "0,0,0"}, msg: "unknown output format"},
		{name: "bad tol", args: []string{"solve", "--rotation-tol", "-1", "--w", "0,0,1", "--v", "0,0,0"}, msg: "rotation_tol"},
	} {
		t.Run(test.name, func(t *testing.T) {
			code, _, stderr := runCmd(t, test.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, test.msg)
		})
	}
}

func TestSolveRotationTol(t *testing.T) {
	code, out, stderr := runCmd(t, "solve", "--rotation-tol", "1e-3", "--w", "0,0,1e-6", "--v", "2,0,0")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "   - h: NaN\n")
	assert.Contains(t, out, "   - s_hat: [1.0000,0.0000,0.0000]^T\n")
}

func TestSolveDebugLogging(t *testing.T) {
	code, _, stderr := runCmd(t, "solve", "--log-level", "debug", "--w", "0,0,1", "--v", "0,-2,0")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "screw from twist")
	assert.Contains(t, stderr, "branch=rotation")
}

func TestExampleList(t *testing.T) {
	code, out, stderr := runCmd(t, "example", "--list")
	require.Equal(t, 0, code, stderr)
	for _, name := range []string{"mr-3.3.2-1", "mr-3.23", "kajita-6.9"} {
		assert.Contains(t, out, name)
	}
}

func TestExampleNamed(t *testing.T) {
	code, out, stderr := runCmd(t, "example", "mr-3.23")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(out, "mr-3.23:\n"), out)
	assert.Contains(t, out, "   - q: [2.0000,-1.0000,0.0000]^T\n")
	assert.Empty(t, stderr)
}

func TestExampleUnconfirmedWarns(t *testing.T) {
	code, out, stderr := runCmd(t, "example", "kajita-6.8")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "   - q: [0.0000,-1.0000,0.0000]^T\n")
	assert.Contains(t, stderr, "not confirmed")
}

func TestExampleAll(t *testing.T) {
	code, out, stderr := runCmd(t, "example")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 6, strings.Count(out, "screw S {q,s_hat,h}:"))
}

func TestExampleUnknown(t *testing.T) {
	code, _, stderr := runCmd(t, "example", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown example \"nope\"`)
}

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	plot := filepath.Join(dir, "sweep.png")
	code, out, stderr := runCmd(t, "sweep", "--plot", plot, "--v", "0,1,0", "--axis", "1,0,0")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus the default 25 samples.
	assert.Len(t, lines, 26)
	assert.Contains(t, lines[0], "theta_dot")
	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, stderr, "sweep plot written")
}

func TestSweepBadAxis(t *testing.T) {
	code, _, stderr := runCmd(t, "sweep", "--axis", "1,0")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--axis needs 3 components")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "twistscrew.yaml")
	content := `
format: yaml
precision: 6
sweep:
  samples: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	code, out, stderr := runCmd(t, "--config", path, "example", "mr-3.3.2-1")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "name: mr-3.3.2-1")

	// Flags override the file.
	code, out, stderr = runCmd(t, "--config", path, "-f", "text", "sweep")
	require.Equal(t, 0, code, stderr)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
}

func TestConfigFileMissing(t *testing.T) {
	code, _, stderr := runCmd(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "example")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error reading config file")
}
