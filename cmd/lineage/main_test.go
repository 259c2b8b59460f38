package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// parseScript
// -----------------------------------------------------------------------------

func TestParseScript_Valid(t *testing.T) {
	t.Parallel()

	steps, err := parseScript("add:3, advance ,mul:-2,set:0")
	require.NoError(t, err)

	require.Len(t, steps, 4)
	assert.Equal(t, step{Op: "add", Arg: 3}, steps[0])
	assert.Equal(t, step{Op: "advance"}, steps[1])
	assert.Equal(t, step{Op: "mul", Arg: -2}, steps[2])
	assert.Equal(t, step{Op: "set", Arg: 0}, steps[3])
}

func TestParseScript_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		script  string
		wantSub string
	}{
		{name: "unknown op", script: "frobnicate:1", wantSub: "unknown operation"},
		{name: "missing argument", script: "add", wantSub: "requires an argument"},
		{name: "bad argument", script: "mul:two", wantSub: "bad argument"},
		{name: "advance with argument", script: "advance:1", wantSub: "takes no argument"},
		{name: "empty step", script: "add:1,,advance", wantSub: "empty step"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseScript(tc.script)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

//
// -----------------------------------------------------------------------------
// replay
// -----------------------------------------------------------------------------

func TestReplay_EveryStepIsDirectSuccessor(t *testing.T) {
	t.Parallel()

	steps, err := parseScript("add:1,advance,mul:2,set:9")
	require.NoError(t, err)

	rep := replay(5, steps)

	assert.Equal(t, int64(5), rep.Start)
	assert.Equal(t, int64(9), rep.Final)
	require.Len(t, rep.Steps, 4)

	wantPayloads := []int64{6, 6, 12, 9}
	for i, sr := range rep.Steps {
		assert.True(t, sr.DirectSuccessor, "step %d", i)
		assert.False(t, sr.SameVersion, "step %d", i)
		assert.Equal(t, wantPayloads[i], sr.PayloadAfter, "step %d", i)
	}

	// Transitions chain: each step starts from the previous payload.
	assert.Equal(t, int64(5), rep.Steps[0].PayloadBefore)
	assert.Equal(t, int64(6), rep.Steps[1].PayloadBefore)
	assert.Equal(t, int64(6), rep.Steps[2].PayloadBefore)
	assert.Equal(t, int64(12), rep.Steps[3].PayloadBefore)
}

func TestReplay_EmptyScript(t *testing.T) {
	t.Parallel()

	rep := replay(7, nil)

	assert.Equal(t, int64(7), rep.Start)
	assert.Equal(t, int64(7), rep.Final)
	assert.Empty(t, rep.Steps)
}

//
// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-start", "5", "-steps", "add:1,advance"}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	out := stdout.String()

	assert.Contains(t, out, "start: payload 5 at version 0")
	assert.Contains(t, out, "add:1")
	assert.Contains(t, out, "direct-successor=true")
	assert.Contains(t, out, "final: payload 6 after 2 derivation(s)")
	assert.Empty(t, stderr.String())
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-start", "5", "-steps", "add:1,mul:2", "-json"}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	var rep report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))

	assert.Equal(t, int64(5), rep.Start)
	assert.Equal(t, int64(12), rep.Final)
	require.Len(t, rep.Steps, 2)
	assert.Equal(t, "add:1", rep.Steps[0].Step)
	assert.True(t, rep.Steps[0].DirectSuccessor)
	assert.True(t, rep.Steps[1].DirectSuccessor)
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		wantSub string
	}{
		{name: "no steps", args: []string{"-start", "1"}, wantSub: "usage:"},
		{name: "blank steps", args: []string{"-steps", "  "}, wantSub: "usage:"},
		{name: "bad step", args: []string{"-steps", "nope:1"}, wantSub: "unknown operation"},
		{name: "bad flag", args: []string{"-definitely-not-a-flag"}, wantSub: "flag provided but not defined"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)

			assert.Equal(t, 2, code)
			assert.True(t, strings.Contains(stderr.String(), tc.wantSub),
				"stderr %q does not contain %q", stderr.String(), tc.wantSub)
		})
	}
}
