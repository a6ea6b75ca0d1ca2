package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/shapes/internal/demo"
	"github.com/mesh-intelligence/shapes/pkg/types"
)

const goldenOutput = `types.User{Username:alice Email:alice@gmail.com Age:30 Active:true}
types.Color[255 0 0]
types.Marker{}
types.ReadOnly{}
types.WriteOnly{}
Log: I am using a singleton!
performing the default behaviour!
Change color to RGB(222, 222, 201)
This is an animal named: Tiger John
This is a vehicle with the model: Honda
`

// executeIn runs the CLI in-process against configDir and returns stdout.
func executeIn(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))

	err := root.Execute()
	return stdout.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestRootRunsEveryDemo(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	if diff := cmp.Diff(goldenOutput, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunWithoutArgsMatchesRoot(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Equal(t, goldenOutput, out)
}

func TestRunSelectedDemosKeepOrder(t *testing.T) {
	out, err := execute(t, "run", demo.NameDescribe, demo.NameClassicStruct)
	require.NoError(t, err)
	assert.Equal(t,
		"types.User{Username:alice Email:alice@gmail.com Age:30 Active:true}\n"+
			"This is an animal named: Tiger John\n"+
			"This is a vehicle with the model: Honda\n",
		out)
}

func TestRunUnknownDemo(t *testing.T) {
	_, err := execute(t, "run", "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestRootRejectsStrayArgs(t *testing.T) {
	_, err := execute(t, "bogus")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "--json", "run", demo.NameUnitStruct, demo.NameDescribe)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second demo.Result
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, demo.Result{Demo: demo.NameUnitStruct, Lines: []string{"types.Marker{}"}}, first)
	assert.Equal(t, demo.NameDescribe, second.Demo)
	assert.Len(t, second.Lines, 2)
}

func TestConfigFile(t *testing.T) {
	t.Run("demos key selects demos", func(t *testing.T) {
		dir := writeConfig(t, "demos:\n  - singleton\n  - unit-struct\n")
		out, err := executeIn(t, dir)
		require.NoError(t, err)
		assert.Equal(t, "types.Marker{}\nLog: I am using a singleton!\n", out)
	})

	t.Run("args override demos key", func(t *testing.T) {
		dir := writeConfig(t, "demos: [singleton]\n")
		out, err := executeIn(t, dir, "run", demo.NameUnitTrait)
		require.NoError(t, err)
		assert.Equal(t, "performing the default behaviour!\n", out)
	})

	t.Run("json key enables JSON output", func(t *testing.T) {
		dir := writeConfig(t, "json: true\ndemos: [tuple-struct]\n")
		out, err := executeIn(t, dir)
		require.NoError(t, err)
		assert.JSONEq(t, `{"demo":"tuple-struct","lines":["types.Color[255 0 0]"]}`, out)
	})

	t.Run("flag overrides json key", func(t *testing.T) {
		dir := writeConfig(t, "json: true\ndemos: [tuple-struct]\n")
		out, err := executeIn(t, dir, "--json=false")
		require.NoError(t, err)
		assert.Equal(t, "types.Color[255 0 0]\n", out)
	})

	t.Run("environment overrides demos key", func(t *testing.T) {
		t.Setenv("SHAPES_DEMOS", demo.NameUnitTrait)
		dir := writeConfig(t, "demos: [singleton]\n")
		out, err := executeIn(t, dir)
		require.NoError(t, err)
		assert.Equal(t, "performing the default behaviour!\n", out)
	})

	t.Run("unknown demo in config is a user error", func(t *testing.T) {
		dir := writeConfig(t, "demos: [nope]\n")
		_, err := executeIn(t, dir)
		assert.ErrorIs(t, err, demo.ErrUnknownDemo)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("malformed config is a system error", func(t *testing.T) {
		dir := writeConfig(t, "demos: [unterminated\n")
		_, err := executeIn(t, dir)
		require.Error(t, err)
		assert.Equal(t, exitSysError, exitCode(err))
	})

	t.Run("missing config uses defaults", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "absent")
		out, err := executeIn(t, dir)
		require.NoError(t, err)
		assert.Equal(t, goldenOutput, out)
		assert.NoDirExists(t, dir, "reading config must not create the directory")
	})
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(demo.Names()))
	for i, name := range demo.Names() {
		assert.True(t, strings.HasPrefix(lines[i], name+" "), "line %d = %q", i, lines[i])
	}
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "--json", "list")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, len(demo.Names()))
	assert.Equal(t, demo.NameClassicStruct, entries[0].Name)
	assert.Equal(t, "record with named fields", entries[0].Summary)
}

func TestInspect(t *testing.T) {
	t.Run("dumps the constructed value", func(t *testing.T) {
		out, err := execute(t, "inspect", demo.NameClassicStruct)
		require.NoError(t, err)
		assert.Contains(t, out, "(types.User)")
		assert.Contains(t, out, `"alice@gmail.com"`)
		assert.Contains(t, out, "Age: (uint32) 30")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "--json", "inspect", demo.NameTupleStruct)
		require.NoError(t, err)
		assert.JSONEq(t, `{"demo":"tuple-struct","type":"types.Color","value":[255,0,0]}`, out)
	})

	t.Run("unknown demo", func(t *testing.T) {
		_, err := execute(t, "inspect", "bogus")
		assert.ErrorIs(t, err, demo.ErrUnknownDemo)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("requires exactly one demo", func(t *testing.T) {
		_, err := execute(t, "inspect")
		require.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
	})
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "quit", args: []string{"quit"}, want: "quitting!\n"},
		{name: "move", args: []string{"move", "3", "4"}, want: "Move to (3, 4)\n"},
		{name: "move negative", args: []string{"move", "--", "-3", "4"}, want: "Move to (-3, 4)\n"},
		{name: "write", args: []string{"write", "hello", "world"}, want: "Write message: hello world\n"},
		{name: "change color", args: []string{"change-color", "222", "222", "201"}, want: "Change color to RGB(222, 222, 201)\n"},
		{name: "unknown variant", args: []string{"teleport"}, wantErr: types.ErrUnknownVariant},
		{name: "bad arity", args: []string{"move", "1"}, wantErr: types.ErrVariantArity},
		{name: "bad payload", args: []string{"change-color", "1", "2", "300"}, wantErr: types.ErrVariantPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"match"}, tt.args...)...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, exitUserError, exitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMatchJSON(t *testing.T) {
	out, err := execute(t, "--json", "match", "write", "hi")
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"write","line":"Write message: hi"}`, out)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	out, err := executeIn(t, dir, "init")
	require.NoError(t, err)
	path := filepath.Join(dir, "config.yaml")
	assert.Equal(t, fmt.Sprintf("Configuration written to %s\n", path), out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written configFile
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, configFile{LogLevel: "warn", Demos: []string{}}, written)

	// Second run leaves the file alone.
	require.NoError(t, os.WriteFile(path, []byte("demos: [singleton]\n"), 0o644))
	out, err = executeIn(t, dir, "init")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Configuration already exists at %s\n", path), out)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "demos: [singleton]\n", string(data))

	// The written config drives later runs.
	out, err = executeIn(t, dir)
	require.NoError(t, err)
	assert.Equal(t, "Log: I am using a singleton!\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "shapes v0.1.0\nmodule: github.com/mesh-intelligence/shapes\n", out)
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitSuccess},
		{name: "plain error", err: base, want: exitUserError},
		{name: "user error", err: userError(base), want: exitUserError},
		{name: "system error", err: sysError(base), want: exitSysError},
		{name: "wrapped system error", err: fmt.Errorf("outer: %w", sysError(base)), want: exitSysError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
			if tt.err != nil {
				assert.ErrorIs(t, tt.err, base)
			}
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarn: true},
		{level: "info", wantInfo: true, wantWarn: true},
		{level: "warn", wantWarn: true},
		{level: "error"},
		{level: "not-a-level", wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := newLogger(tt.level)
			require.NotNil(t, l)
			core := l.Core()
			assert.Equal(t, tt.wantDebug, core.Enabled(zap.DebugLevel))
			assert.Equal(t, tt.wantInfo, core.Enabled(zap.InfoLevel))
			assert.Equal(t, tt.wantWarn, core.Enabled(zap.WarnLevel))
		})
	}
}

func TestNewRunIDIsUnique(t *testing.T) {
	a, b := newRunID(), newRunID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
