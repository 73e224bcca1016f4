// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive plotting session: choose a
// function, enter parameters, plot, then evaluate points.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
	"github.com/pdiddy/fuzzplot/pkg/types"
)

// PlotFunc renders a sampled function and returns the path of the written
// image. Injected so the session logic is testable without a renderer.
type PlotFunc func(f fuzz.Func, series types.Series) (string, error)

// Session drives one interactive loop over the given reader and writer.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	samples int
	plot    PlotFunc
}

// New builds a session reading prompts from r and writing to w.
func New(r io.Reader, w io.Writer, samples int, plot PlotFunc) *Session {
	return &Session{
		in:      bufio.NewScanner(r),
		out:     w,
		samples: samples,
		plot:    plot,
	}
}

// Run loops until the user enters a blank function choice or input ends.
// Invalid input is reported and re-prompted, never fatal.
func (s *Session) Run() error {
	names := make([]string, 0, len(fuzz.Kinds()))
	for _, k := range fuzz.Kinds() {
		names = append(names, fuzz.DisplayName(k))
	}

	for {
		fmt.Fprintf(s.out, "Functions: %s\n", strings.Join(names, ", "))
		choice, ok := s.read("Choose function (blank to quit): ")
		if !ok || choice == "" {
			return nil
		}

		kind, err := fuzz.ParseKind(choice)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		params, ok := s.readParams(kind)
		if !ok {
			return nil
		}
		lv, ok := s.readLevels()
		if !ok {
			return nil
		}

		f, err := fuzz.New(kind, params, lv)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		fmt.Fprint(s.out, f.Definition())

		series, err := fuzz.Sample(f, s.samples)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		path, err := s.plot(f, series)
		if err != nil {
			fmt.Fprintf(s.out, "plot failed: %v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "Wrote %s\n", path)
		log.Debug().Str("path", path).Str("kind", string(kind)).Msg("session plot written")

		if ok := s.evalLoop(f); !ok {
			return nil
		}
	}
}

// readParams prompts for each shape parameter in signature order,
// re-prompting until the value parses.
func (s *Session) readParams(kind fuzz.Kind) ([]float64, bool) {
	names, _ := fuzz.Signature(kind)
	fmt.Fprintf(s.out, "%s - membership function. Enter parameters:\n", fuzz.DisplayName(kind))

	params := make([]float64, 0, len(names))
	for _, name := range names {
		v, ok := s.readFloat(name+": ", nil)
		if !ok {
			return nil, false
		}
		params = append(params, v)
	}
	return params, true
}

// readLevels prompts for the optional output levels; blank keeps the
// defaults.
func (s *Session) readLevels() (fuzz.Levels, bool) {
	defMin := fuzz.DefaultLevels.Min
	defMax := fuzz.DefaultLevels.Max

	v, ok := s.readFloat("y_min [0]: ", &defMin)
	if !ok {
		return fuzz.Levels{}, false
	}
	lvMin := v

	v, ok = s.readFloat("y_max [1]: ", &defMax)
	if !ok {
		return fuzz.Levels{}, false
	}
	return fuzz.Levels{Min: lvMin, Max: v}, true
}

// evalLoop prints membership degrees for user-supplied x values until a
// blank line.
func (s *Session) evalLoop(f fuzz.Func) bool {
	fmt.Fprintln(s.out, "Evaluate points (blank for a new function):")
	for {
		line, ok := s.read("x: ")
		if !ok {
			return false
		}
		if line == "" {
			return true
		}
		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(s.out, "invalid number %q\n", line)
			continue
		}
		fmt.Fprintf(s.out, "µ(%g) = %g\n", x, f.Eval(x))
	}
}

// readFloat prompts until a float parses. A blank line returns *def when
// def is non-nil, otherwise re-prompts. Returns false when input ends.
func (s *Session) readFloat(promptText string, def *float64) (float64, bool) {
	for {
		line, ok := s.read(promptText)
		if !ok {
			return 0, false
		}
		if line == "" {
			if def != nil {
				return *def, true
			}
			fmt.Fprintln(s.out, "a value is required")
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(s.out, "invalid number %q\n", line)
			continue
		}
		return v, true
	}
}

// read prints a prompt and returns the next trimmed line; ok is false at
// end of input.
func (s *Session) read(promptText string) (string, bool) {
	fmt.Fprint(s.out, promptText)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
