package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// runScript drives an Editor with a fixed byte sequence and records
// every line handed to the processor.
func runScript(t *testing.T, input string, cfg Config) (*Editor, *bytes.Buffer, []string, error) {
	t.Helper()
	var out bytes.Buffer
	var processed []string
	inner := cfg.Process
	cfg.Input = strings.NewReader(input)
	cfg.Output = &out
	if cfg.ErrOutput == nil {
		cfg.ErrOutput = &bytes.Buffer{}
	}
	cfg.Process = func(line string) (string, error) {
		processed = append(processed, line)
		if inner != nil {
			return inner(line)
		}
		return "", nil
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	e := New(cfg)
	err := e.Run()
	return e, &out, processed, err
}

func TestRunCommitsEditedLine(t *testing.T) {
	// Type "ab", move left twice, insert "x", commit, quit.
	_, _, processed, err := runScript(t, "ab\x1b[D\x1b[Dx\rq", Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 1 || processed[0] != "xab" {
		t.Errorf("processed = %q, want [\"xab\"]", processed)
	}
}

func TestRunWritesPromptFirst(t *testing.T) {
	_, out, _, err := runScript(t, "q", Config{Prompt: ">>> "})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), ">>> ") {
		t.Errorf("output = %q, want prefix %q", out.String(), ">>> ")
	}
}

func TestRunHistoryNavigation(t *testing.T) {
	// Commit "foo" and "bar", then Up Up Down and commit again.
	e, _, processed, err := runScript(t, "foo\rbar\r\x1b[A\x1b[A\x1b[B\rq", Config{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"foo", "bar", "bar"}
	if len(processed) != len(want) {
		t.Fatalf("processed = %q, want %q", processed, want)
	}
	for i := range want {
		if processed[i] != want[i] {
			t.Errorf("processed[%d] = %q, want %q", i, processed[i], want[i])
		}
	}
	if got := e.History(); len(got) != 3 {
		t.Errorf("history length = %d, want 3", len(got))
	}
}

func TestRunHistoryRedraw(t *testing.T) {
	_, out, _, err := runScript(t, "foo\r\x1b[Aq", Config{Prompt: "> "})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\r> foo\x1b[K") {
		t.Errorf("output %q missing history redraw sequence", out.String())
	}
}

func TestRunTerminateDiscardsBuffer(t *testing.T) {
	e, _, processed, err := runScript(t, "abc\x03", Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 0 {
		t.Errorf("processed = %q, want none", processed)
	}
	if got := e.History(); len(got) != 0 {
		t.Errorf("history = %q, want empty", got)
	}
}

func TestRunEndOfInputEndsLoop(t *testing.T) {
	_, _, processed, err := runScript(t, "ab", Config{})
	if err != nil {
		t.Fatalf("Run on exhausted input = %v, want nil", err)
	}
	if len(processed) != 0 {
		t.Errorf("processed = %q, want none", processed)
	}
}

func TestRunBackspaceAtColumnZero(t *testing.T) {
	_, _, processed, err := runScript(t, "\x7f\x7fab\rq", Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 1 || processed[0] != "ab" {
		t.Errorf("processed = %q, want [\"ab\"]", processed)
	}
}

func TestRunEmptyCommit(t *testing.T) {
	e, _, processed, err := runScript(t, "\rq", Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 1 || processed[0] != "" {
		t.Errorf("processed = %q, want one empty line", processed)
	}
	if got := e.History(); len(got) != 1 || got[0] != "" {
		t.Errorf("history = %q, want one empty entry", got)
	}
}

func TestRunProcessorFailureAbortsAfterHistoryAppend(t *testing.T) {
	var errOut bytes.Buffer
	boom := errors.New("boom")
	e, _, _, err := runScript(t, "bad\rnever\r", Config{
		ErrOutput: &errOut,
		Process:   func(string) (string, error) { return "", boom },
	})
	if !errors.Is(err, ErrProcess) {
		t.Fatalf("err = %v, want ErrProcess", err)
	}
	if got := e.History(); len(got) != 1 || got[0] != "bad" {
		t.Errorf("history = %q, want [\"bad\"]", got)
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("error output = %q, want it to mention boom", errOut.String())
	}
}

func TestRunIncompleteLineAccumulates(t *testing.T) {
	complete := func(line string) bool { return strings.HasSuffix(line, ";") }
	_, _, processed, err := runScript(t, "a\rb;\rq", Config{IsComplete: complete})
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 1 || processed[0] != "a\nb;" {
		t.Errorf("processed = %q, want [\"a\\nb;\"]", processed)
	}
}

func TestRunMultiByteInsertThenBackspace(t *testing.T) {
	_, _, processed, err := runScript(t, "é\x7f\rq", Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 1 || processed[0] != "" {
		t.Errorf("processed = %q, want one empty line", processed)
	}
}

func TestRunResultEcho(t *testing.T) {
	_, out, _, err := runScript(t, "x\rq", Config{
		Process: func(string) (string, error) { return "result!", nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "result!\r\n") {
		t.Errorf("output = %q, want it to contain %q", out.String(), "result!\r\n")
	}
}

func TestRunQuietSuppressesResult(t *testing.T) {
	_, out, _, err := runScript(t, "x\rq", Config{
		Quiet:   true,
		Process: func(string) (string, error) { return "result!", nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "result!") {
		t.Errorf("output = %q, want no result echo", out.String())
	}
}

func TestRunFlushFailureIsFatal(t *testing.T) {
	e := New(Config{
		Input:  strings.NewReader("a"),
		Output: failWriter{},
		Prompt: "> ",
	})
	err := e.Run()
	if err == nil {
		t.Fatal("Run with failing output returned nil")
	}
	if !errors.Is(err, ErrFlush) && !errors.Is(err, ErrWrite) {
		t.Errorf("err = %v, want ErrFlush or ErrWrite", err)
	}
}

type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errors.New("input gone")
}

func TestRunReadFailureIsFatal(t *testing.T) {
	var out bytes.Buffer
	e := New(Config{Input: failReader{}, Output: &out, Prompt: "> "})
	err := e.Run()
	if !errors.Is(err, ErrRead) {
		t.Errorf("err = %v, want ErrRead", err)
	}
}
