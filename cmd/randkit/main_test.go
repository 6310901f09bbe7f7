package main

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomagicln/randkit/pkg/specfile"
)

func runGen(t *testing.T, specContent string, args ...string) (string, error) {
	t.Helper()

	path := t.TempDir() + "/spec.yaml"
	require.NoError(t, os.WriteFile(path, []byte(specContent), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"gen", "--spec", path}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestGenInts(t *testing.T) {
	out, err := runGen(t, `
kind: int
min: 60
max: 70
count: 75
`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 75)
	for _, line := range lines {
		v, err := strconv.Atoi(line)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 60)
		assert.LessOrEqual(t, v, 70)
	}
}

func TestGenStringsWithCountOverride(t *testing.T) {
	out, err := runGen(t, `
kind: string
minLength: 4
maxLength: 4
type: numeric
prefix: "n-"
count: 3
`, "--count", "10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		assert.Len(t, line, 6)
		assert.True(t, strings.HasPrefix(line, "n-"), "missing prefix: %q", line)
	}
}

func TestGenRejectsNonPositiveCountOverride(t *testing.T) {
	spec := `
kind: int
min: 0
max: 9
count: 5
`
	_, err := runGen(t, spec, "--count", "-5")
	require.EqualError(t, err, "count override must be greater than zero, got -5")

	_, err = runGen(t, spec, "--count", "0")
	require.EqualError(t, err, "count override must be greater than zero, got 0")
}

func TestGenInvalidSpecFails(t *testing.T) {
	_, err := runGen(t, `
kind: int
min: 5
max: 4
count: 1
`)
	require.EqualError(t, err, "min must be equal or less than max")
}

func TestGenUnknownKindFails(t *testing.T) {
	_, err := runGen(t, `kind: float`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown spec kind 'float'")
}

func TestGenerateInt64DefaultsToOneValue(t *testing.T) {
	doc := &specfile.Document{Kind: "int64", Min: 1, Max: 1}
	var out bytes.Buffer
	require.NoError(t, generate(&out, doc))
	assert.Equal(t, "1\n", out.String())
}
