package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"convert", []string{"convert", "1 m", "cm"}, "100 cm\n"},
		{"convert precision", []string{"--precision", "2", "convert", "1 mi", "km"}, "1.61 km\n"},
		{"calc add", []string{"calc", "1 m", "+", "20 cm"}, "1.2 m\n"},
		{"calc mul", []string{"calc", "2 m", "*", "3 km"}, "6000 m2\n"},
		{"calc div", []string{"calc", "6 m", "/", "2 s"}, "3 m/s\n"},
		{"calc temperature", []string{"calc", "100 tempC", "-", "50 tempC"}, "50 degC\n"},
		{"inverse", []string{"inverse", "4 s"}, "0.25 1/s\n"},
		{"aliases", []string{"aliases", "m"}, "m\nmeter\nmeters\nmetre\nmetres\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr)
			}
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunParseText(t *testing.T) {
	code, stdout, _ := runCLI(t, "parse", "2.5 kg*m/s^2")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "quantity: 2.5 kg*m/s2\n")
	assert.Contains(t, stdout, "numerator: <kilogram> <meter>\n")
	assert.Contains(t, stdout, "denominator: <second> <second>\n")
	assert.Contains(t, stdout, "kind: force\n")
	assert.Contains(t, stdout, "signature: 7961\n")
}

func TestRunParseJSON(t *testing.T) {
	code, stdout, _ := runCLI(t, "--output", "json", "parse", "1 km")
	require.Equal(t, 0, code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "1 km", doc["input"])
	assert.Equal(t, "km", doc["units"])
	assert.Equal(t, "length", doc["kind"])
	assert.Equal(t, "1000 m", doc["base"])
	assert.Equal(t, float64(1), doc["signature"])
}

func TestRunListYAML(t *testing.T) {
	code, stdout, _ := runCLI(t, "-o", "yaml", "units", "length")
	require.Equal(t, 0, code)

	var names []string
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &names))
	assert.Contains(t, names, "meter")
	assert.Contains(t, names, "foot")
}

func TestRunKinds(t *testing.T) {
	code, stdout, _ := runCLI(t, "kinds")
	require.Equal(t, 0, code)
	assert.Contains(t, strings.Split(stdout, "\n"), "length")
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no args", []string{}, 0},
		{"unknown command", []string{"frobnicate"}, 2},
		{"unknown flag", []string{"--bogus", "kinds"}, 2},
		{"missing args", []string{"convert", "1 m"}, 2},
		{"bad output", []string{"--output", "xml", "kinds"}, 2},
		{"unknown operator", []string{"calc", "1 m", "%", "2 m"}, 2},
		{"unparsable", []string{"parse", "1 furlongz"}, 1},
		{"incompatible", []string{"convert", "1 m", "kg"}, 1},
		{"temperature rule", []string{"calc", "1 tempC", "+", "1 tempC"}, 1},
		{"unknown kind", []string{"units", "bogus"}, 1},
		{"missing config", []string{"--config", "/nonexistent/qty.yaml", "kinds"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != tt.code {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tt.code, stderr)
			}
			if tt.code != 0 {
				assert.Contains(t, stderr, "error: ")
			}
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nprecision: 1\n"), 0o600))

	code, stdout, stderr := runCLI(t, "--config", path, "convert", "1 mi", "km")
	require.Equal(t, 0, code, stderr)

	var doc resultDoc
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "1.6 km", doc.Quantity)
	assert.Equal(t, 1.6, doc.Scalar)

	code, stdout, _ = runCLI(t, "--config", path, "--output", "text", "convert", "1 mi", "km")
	require.Equal(t, 0, code)
	assert.Equal(t, "1.6 km\n", stdout)
}

func TestRunEnvironment(t *testing.T) {
	t.Setenv("QTY_PRECISION", "0")
	code, stdout, _ := runCLI(t, "convert", "1 mi", "km")
	require.Equal(t, 0, code)
	assert.Equal(t, "2 km\n", stdout)
}

func TestRunVerboseLogs(t *testing.T) {
	code, _, stderr := runCLI(t, "--verbose", "convert", "1 m", "cm")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "parsed quantity")
	assert.Contains(t, stderr, "signature=1")
}

func TestRunProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.out")
	mem := filepath.Join(dir, "mem.out")
	code, _, stderr := runCLI(t, "--cpuprofile", cpu, "--memprofile", mem, "kinds")
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, cpu)
	assert.FileExists(t, mem)
}
