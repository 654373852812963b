package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowpath/trace"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestTraceCommand_Sample(t *testing.T) {
	out, _, err := run(t, "trace", "--log-level", "error")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Flow path (11 points):",
		"(0, 0)", "(0, 1)", "(0, 2)", "(0, 3)", "(0, 4)",
		"(1, 4)", "(2, 4)", "(2, 3)", "(2, 2)", "(3, 2)", "(3, 3)",
		"status: sink at (3, 3) (code 255)",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestTraceCommand_OutOfBoundsStart(t *testing.T) {
	out, _, err := run(t, "trace", "--row=-1", "--col=0", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "Flow path (0 points):\nstatus: out-of-bounds at (-1, 0)\n", out)
}

func TestTraceCommand_JSON(t *testing.T) {
	out, _, err := run(t, "trace", "--row", "4", "--col", "4", "--json", "--log-level", "error")
	require.NoError(t, err)

	var res struct {
		Path   []trace.Point `json:"path"`
		Status string        `json:"status"`
		Stop   trace.Point   `json:"stop"`
		Code   int           `json:"code"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []trace.Point{{Row: 4, Col: 4}}, res.Path)
	assert.Equal(t, "out-of-bounds", res.Status)
	assert.Equal(t, trace.Point{Row: 4, Col: 5}, res.Stop)
}

func TestTraceCommand_InvalidCodeIsLogged(t *testing.T) {
	out, errOut, err := run(t, "trace", "--grid", "1 1 3", "--log-format", "json", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "status: invalid-code at (0, 2) (code 3)")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(errOut)), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 2, rec["col"])
	assert.EqualValues(t, 3, rec["code"])
}

func TestTraceCommand_Steps(t *testing.T) {
	out, _, err := run(t, "trace", "--grid", "1,16", "--steps", "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out,
		"step 1: (0, 0) -> (0, 1) walking\n"+
			"step 2: (0, 1) -> (0, 0) walking\n"+
			"step 3: (0, 0) -> (0, 0) revisited\n"), out)
	assert.Contains(t, out, "status: revisited at (0, 0)")
}

func TestTraceCommand_Decimate(t *testing.T) {
	out, _, err := run(t, "trace", "--decimate", "5", "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Flow path (3 points):\n(0, 0)\n(1, 4)\n(3, 3)\n"), out)
}

func TestTraceCommand_Render(t *testing.T) {
	out, _, err := run(t, "trace", "--grid", "1 4; 0 16", "--render", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "status: sink at (1, 0) (code 0)")
	assert.Contains(t, lines[1], "→")
	assert.Contains(t, lines[1], "↓")
	assert.Contains(t, lines[2], "·")
	assert.Contains(t, lines[2], "←")
}

func TestTraceCommand_Errors(t *testing.T) {
	_, _, err := run(t, "trace", "--grid", "1 2; 3", "--log-level", "error")
	require.Error(t, err)

	_, _, err = run(t, "trace", "--grid", "1 300", "--log-level", "error")
	require.Error(t, err)

	_, _, err = run(t, "trace", "--json", "--render")
	require.Error(t, err)

	_, _, err = run(t, "trace", "--log-level", "loud")
	require.Error(t, err)
}

func TestCodesCommand(t *testing.T) {
	out, _, err := run(t, "codes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Contains(t, lines[0], "DIRECTION")
	assert.Contains(t, lines[1], "east")
	assert.Contains(t, lines[10], "no-data")
}

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [][]uint8
		wantErr bool
	}{
		{"Semicolons", "1 2;4 8", [][]uint8{{1, 2}, {4, 8}}, false},
		{"NewlinesAndCommas", "1,2\n4,8\n", [][]uint8{{1, 2}, {4, 8}}, false},
		{"BlankRowsSkipped", "1 2;;  ;4 8", [][]uint8{{1, 2}, {4, 8}}, false},
		{"Ragged", "1 2;4", [][]uint8{{1, 2}, {4}}, false},
		{"Empty", " ; ", nil, true},
		{"NotANumber", "1 x", nil, true},
		{"TooLarge", "256", nil, true},
		{"Negative", "-1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGrid(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
