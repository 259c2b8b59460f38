// cmd/lineage/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sghaida/versioned/versioned"
)

// step is one parsed derivation instruction.
type step struct {
	// Op is one of "add", "mul", "set", "advance".
	Op string

	// Arg is the numeric argument for add/mul/set; unused for advance.
	Arg int64
}

// stepReport captures one replayed transition for output.
type stepReport struct {
	// Step is the instruction as written in the script, e.g. "add:3".
	Step string `json:"step"`

	// PayloadBefore/PayloadAfter are the payloads of source and result.
	PayloadBefore int64 `json:"payloadBefore"`
	PayloadAfter  int64 `json:"payloadAfter"`

	// DirectSuccessor is the successor predicate between source and result.
	// True at every step of a correct replay.
	DirectSuccessor bool `json:"directSuccessor"`

	// SameVersion is the same-version predicate between source and result.
	// False at every step of a correct replay.
	SameVersion bool `json:"sameVersion"`
}

// report is the full replay, the shape emitted in -json mode.
type report struct {
	Start int64        `json:"start"`
	Final int64        `json:"final"`
	Steps []stepReport `json:"steps"`
}

// run executes the tool and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lineage", flag.ContinueOnError)
	flags.SetOutput(stderr)

	start := flags.Int64("start", 0, "initial payload value (construct at version 0)")
	script := flags.String("steps", "", "comma-separated steps: add:K, mul:K, set:K, advance")
	asJSON := flags.Bool("json", false, "emit the replay as JSON")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*script) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: lineage -start <n> -steps add:1,advance,mul:2 [-json]")
		return 2
	}

	steps, err := parseScript(*script)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "lineage: %v\n", err)
		return 2
	}

	rep := replay(*start, steps)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			_, _ = fmt.Fprintf(stderr, "lineage: %v\n", err)
			return 1
		}
		return 0
	}

	_, _ = fmt.Fprintf(stdout, "start: payload %d at version 0\n", rep.Start)
	for i, sr := range rep.Steps {
		_, _ = fmt.Fprintf(stdout, "step %d  %-10s payload %d -> %d  direct-successor=%t same-version=%t\n",
			i+1, sr.Step, sr.PayloadBefore, sr.PayloadAfter, sr.DirectSuccessor, sr.SameVersion)
	}
	_, _ = fmt.Fprintf(stdout, "final: payload %d after %d derivation(s)\n", rep.Final, len(rep.Steps))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// parseScript splits a comma-separated script into steps.
//
// Each step is either the bare word "advance" or "<op>:<int64>" where op is
// add, mul or set. Whitespace around steps is tolerated so scripts can be
// written readably in shells and tests.
func parseScript(script string) ([]step, error) {
	parts := strings.Split(script, ",")
	steps := make([]step, 0, len(parts))

	for _, part := range parts {
		raw := strings.TrimSpace(part)
		if raw == "" {
			return nil, fmt.Errorf("empty step in script %q", script)
		}

		op, argText, hasArg := strings.Cut(raw, ":")
		switch op {
		case "advance":
			if hasArg {
				return nil, fmt.Errorf("step %q: advance takes no argument", raw)
			}
			steps = append(steps, step{Op: op})
		case "add", "mul", "set":
			if !hasArg {
				return nil, fmt.Errorf("step %q: %s requires an argument", raw, op)
			}
			arg, err := strconv.ParseInt(strings.TrimSpace(argText), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("step %q: bad argument: %w", raw, err)
			}
			steps = append(steps, step{Op: op, Arg: arg})
		default:
			return nil, fmt.Errorf("step %q: unknown operation", raw)
		}
	}
	return steps, nil
}

// replay runs the script against a fresh container and records every
// transition. The previous container is retained at each step purely to
// evaluate the predicates against its successor.
func replay(start int64, steps []step) report {
	ident := func(n int64) int64 { return n }

	base := versioned.New(start)
	rep := report{Start: start, Steps: make([]stepReport, 0, len(steps))}

	for _, s := range steps {
		before := *base.Peek()

		var next versioned.Versioned[int64]
		switch s.Op {
		case "advance":
			next = base.Advance()
		case "add":
			next = base.TransformCloneFunc(ident, func(n int64) int64 { return n + s.Arg })
		case "mul":
			next = base.TransformCloneFunc(ident, func(n int64) int64 { return n * s.Arg })
		case "set":
			next = base.Replace(s.Arg)
		}

		rep.Steps = append(rep.Steps, stepReport{
			Step:            formatStep(s),
			PayloadBefore:   before,
			PayloadAfter:    *next.Peek(),
			DirectSuccessor: base.IsDirectSuccessor(&next),
			SameVersion:     base.IsSameVersion(&next),
		})
		base = next
	}

	rep.Final = *base.Peek()
	return rep
}

func formatStep(s step) string {
	if s.Op == "advance" {
		return s.Op
	}
	return s.Op + ":" + strconv.FormatInt(s.Arg, 10)
}
