package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-ncc/dsp/match"
	"github.com/cwbudde/algo-ncc/stats/ncc"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts, err := parseArgs(args, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs(%v) failed: %v", args, err)
	}
	var out bytes.Buffer
	err = run(opts, &out, zerolog.Nop())
	return out.String(), err
}

func TestRun_Compute(t *testing.T) {
	out, err := runArgs(t, "1,2,3,4,5", "2,4,6,8,10")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.TrimSpace(out) != "1" {
		t.Errorf("output = %q, want 1", out)
	}
}

func TestRun_SuppliedMeans(t *testing.T) {
	out, err := runArgs(t, "-mean-f", "0", "-mean-g", "0", "1,2,3", "3,2,1")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out, "0.714285") {
		t.Errorf("output = %q, want 10/14", out)
	}
}

func TestRun_LengthMismatch(t *testing.T) {
	_, err := runArgs(t, "1,2,3", "1,2")
	var lm *ncc.LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("expected *ncc.LengthMismatchError, got %v", err)
	}
	if lm.LenF != 3 || lm.LenG != 2 {
		t.Errorf("lengths = %d,%d, want 3,2", lm.LenF, lm.LenG)
	}
}

func TestMain_LengthMismatchExits(t *testing.T) {
	if os.Getenv("NCC_EXEC_MAIN") == "1" {
		os.Args = []string{"ncc", "1,2,3", "1,2"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMain_LengthMismatchExits$")
	cmd.Env = append(os.Environ(), "NCC_EXEC_MAIN=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected non-zero exit, got %v", err)
	}
	if code := exitErr.ExitCode(); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	for _, want := range []string{"len_f=3", "len_g=2", "unequal sets"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr.String())
		}
	}
	if stdout.Len() != 0 {
		t.Errorf("a result was printed: %q", stdout.String())
	}
}

func TestRun_ZeroVarianceIsNotAnError(t *testing.T) {
	out, err := runArgs(t, "5,5,5", "1,2,3")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.TrimSpace(out) != "NaN" {
		t.Errorf("output = %q, want NaN", out)
	}
}

func TestRun_Match(t *testing.T) {
	out, err := runArgs(t, "-match", "-profile", "0,1,0,-1,0,2,5,3,0,1", "4,10,6")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out, "lag=5 score=") {
		t.Errorf("output = %q, want best lag 5", out)
	}
	if !strings.Contains(out, "LAG") || strings.Count(out, "\n") != 10 {
		t.Errorf("profile table missing or wrong size:\n%s", out)
	}
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-match", "-method", "fft", " 1, 2 ,3,", "4,5"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if !opts.match || opts.method != match.MethodFFT {
		t.Errorf("flags not applied: %+v", opts)
	}
	if len(opts.f) != 3 || opts.f[1] != 2 || len(opts.g) != 2 {
		t.Errorf("sequences = %v, %v", opts.f, opts.g)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"one sequence", []string{"1,2"}, errUsage},
		{"bad method", []string{"-method", "fast", "1", "2"}, match.ErrUnknownMethod},
		{"only mean-f", []string{"-mean-f", "1", "1,2", "3,4"}, errMeanPair},
		{"only mean-g", []string{"-mean-g", "1", "1,2", "3,4"}, errMeanPair},
		{"interior empty element", []string{"1,,3,4", "1,2,3"}, errEmptyItem},
		{"leading empty element", []string{",1,2", "1,2"}, errEmptyItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args, io.Discard); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := parseArgs([]string{"1,x", "1,2"}, io.Discard); err == nil {
		t.Error("expected parse error for non-numeric element")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	buf.Reset()
	newLogger(&buf, true).Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}
