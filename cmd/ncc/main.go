// Command ncc prints the normalized cross-correlation of two sequences.
//
// Usage:
//
//	ncc [flags] F G
//
// F and G are comma-separated numbers of equal length. Sequences of
// different length are a fatal error.
//
// Examples:
//
//	ncc 1,2,3,4,5 2,4,6,8,10
//	ncc -mean-f 3 -mean-g 6 1,2,3,4,5 2,4,6,8,10
//	ncc -match 0,1,0,-1,0,2,5,3,0,1 4,10,6
//	ncc -match -method fft -profile signal template
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-ncc/dsp/match"
	"github.com/cwbudde/algo-ncc/stats/ncc"
)

var (
	errUsage     = errors.New("expected exactly two sequences")
	errMeanPair  = errors.New("-mean-f and -mean-g must be set together")
	errEmptyItem = errors.New("empty element")
)

type options struct {
	meanF   float64
	meanG   float64
	match   bool
	profile bool
	method  match.Method
	verbose bool
	f, g    []float64
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	log := newLogger(os.Stderr, opts.verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	if err := run(opts, os.Stdout, log); err != nil {
		var lm *ncc.LengthMismatchError
		if errors.As(err, &lm) {
			log.Fatal().Int("len_f", lm.LenF).Int("len_g", lm.LenG).Msg("ncc: received unequal sets")
		}
		log.Fatal().Err(err).Msg("correlation failed")
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(level).
		With().
		Timestamp().
		Str("component", "ncc").
		Logger()
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("ncc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.meanF, "mean-f", math.NaN(), "precomputed mean of F (requires -mean-g)")
	fs.Float64Var(&opts.meanG, "mean-g", math.NaN(), "precomputed mean of G (requires -mean-f)")
	fs.BoolVar(&opts.match, "match", false, "slide G over F and report the best lag")
	fs.BoolVar(&opts.profile, "profile", false, "with -match, print the score of every lag")
	method := fs.String("method", "auto", "match method: auto, direct or fft")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ncc [flags] F G\n\n")
		fmt.Fprintf(stderr, "Prints the normalized cross-correlation of two comma-separated sequences.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	m, err := match.ParseMethod(*method)
	if err != nil {
		return opts, fmt.Errorf("-method %q: %w", *method, err)
	}
	opts.method = m

	if math.IsNaN(opts.meanF) != math.IsNaN(opts.meanG) {
		return opts, errMeanPair
	}

	if fs.NArg() != 2 {
		return opts, fmt.Errorf("%w, got %d", errUsage, fs.NArg())
	}
	if opts.f, err = parseSequence(fs.Arg(0)); err != nil {
		return opts, fmt.Errorf("F: %w", err)
	}
	if opts.g, err = parseSequence(fs.Arg(1)); err != nil {
		return opts, fmt.Errorf("G: %w", err)
	}
	return opts, nil
}

func parseSequence(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			if i == len(fields)-1 {
				continue
			}
			return nil, fmt.Errorf("element %d: %w", i, errEmptyItem)
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func run(opts options, stdout io.Writer, log zerolog.Logger) error {
	log.Debug().Int("len_f", len(opts.f)).Int("len_g", len(opts.g)).Msg("sequences parsed")

	if opts.match {
		return runMatch(opts, stdout, log)
	}

	var (
		r   float64
		err error
	)
	if !math.IsNaN(opts.meanF) && !math.IsNaN(opts.meanG) {
		log.Debug().Float64("mean_f", opts.meanF).Float64("mean_g", opts.meanG).Msg("using supplied means")
		r, err = ncc.ComputeWithMeans(opts.f, opts.g, opts.meanF, opts.meanG)
	} else {
		r, err = ncc.Compute(opts.f, opts.g)
	}
	if err != nil {
		return err
	}

	if math.IsNaN(r) || math.IsInf(r, 0) {
		log.Warn().Msg("zero-variance input, result is not finite")
	}
	fmt.Fprintf(stdout, "%g\n", r)
	return nil
}

func runMatch(opts options, stdout io.Writer, log zerolog.Logger) error {
	mopts := []match.Option{match.WithMethod(opts.method)}

	scores, err := match.Profile(opts.f, opts.g, mopts...)
	if err != nil {
		return err
	}
	lag, score := match.FindPeak(scores)
	log.Debug().Int("lags", len(scores)).Str("method", opts.method.String()).Msg("profile computed")

	if lag < 0 {
		log.Warn().Msg("no window with finite score")
	}
	fmt.Fprintf(stdout, "lag=%d score=%g\n", lag, score)

	if opts.profile {
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LAG\tSCORE")
		for k, v := range scores {
			fmt.Fprintf(tw, "%d\t%.6f\n", k, v)
		}
		return tw.Flush()
	}
	return nil
}
