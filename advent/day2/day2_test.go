package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRun(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  string
	}{
		{
			"abcdef\nbababc\nabbcde\nabcccd\naabcdd\nabcdee\nababab\n",
			"part1 12\npart2 abcde\n",
		},
		{
			"abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz\n",
			"part1 0\npart2 fgij\n",
		},
		{"abcde\nieukg\n", "part1 0\npart2 \n"},
	} {
		name := writeInput(t, tt.input)
		var buf bytes.Buffer
		if err := run(&buf, name); err != nil {
			t.Errorf("run(%q): %s", tt.input, err)
			continue
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("run(%q): got %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	name := writeInput(t, "aabbb\nabcde\nabfde\n")
	var b0, b1 bytes.Buffer
	for _, b := range []*bytes.Buffer{&b0, &b1} {
		if err := run(b, name); err != nil {
			t.Fatal(err)
		}
	}
	if b0.String() != b1.String() {
		t.Errorf("got %q then %q", b0.String(), b1.String())
	}
	if want := "part1 1\npart2 abde\n"; b0.String() != want {
		t.Errorf("got %q; want %q", b0.String(), want)
	}
}

func TestRunMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got err=%v; want fs.ErrNotExist", err)
	} else if !strings.HasPrefix(err.Error(), "reading ") {
		t.Errorf("got %q; want reading <path> prefix", err)
	}
	if buf.Len() != 0 {
		t.Errorf("got output %q; want none", buf.String())
	}
}

func TestMissingFilename(t *testing.T) {
	if os.Getenv("DAY2_RUN_MAIN") == "1" {
		os.Args = os.Args[:1]
		main()
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestMissingFilename$")
	cmd.Env = append(os.Environ(), "DAY2_RUN_MAIN=1")
	out, err := cmd.Output()
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("got err=%v; want exit status 1", err)
	}
	if code := ee.ExitCode(); code != 1 {
		t.Errorf("got exit status %d; want 1", code)
	}
	if got, want := string(out), "Missing filename\n"; got != want {
		t.Errorf("got stdout %q; want %q", got, want)
	}
}
