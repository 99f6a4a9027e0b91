package main

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintResult(t *testing.T) {
	var buf strings.Builder
	printResult(&buf)

	out := buf.String()
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("output has %d newlines, want exactly 1", got)
	}
	if !strings.HasPrefix(out, "Result: ") {
		t.Errorf("output = %q, want Result: prefix", out)
	}
	if !strings.Contains(out, "success") {
		t.Errorf("output = %q, want substring %q", out, "success")
	}
	if !strings.Contains(out, "Hello from Rust project!") {
		t.Errorf("output = %q, want substring %q", out, "Hello from Rust project!")
	}
}

func TestPrintResult_Stable(t *testing.T) {
	var first, second strings.Builder
	printResult(&first)
	printResult(&second)

	if first.String() != second.String() {
		t.Errorf("output not stable: %q vs %q", first.String(), second.String())
	}
}

// buildStub compiles the stub binary into a temp dir
func buildStub(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "forge-stub")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("building stub: %v\n%s", err, out)
	}
	return bin
}

func TestStub_ArgumentsIgnored(t *testing.T) {
	bin := buildStub(t)

	argSets := [][]string{
		nil,
		{"--help"},
		{"extra", "args", "here"},
	}

	var want string
	for _, args := range argSets {
		out, err := exec.Command(bin, args...).CombinedOutput()
		if err != nil {
			// CombinedOutput only errors on a non-zero exit here
			t.Fatalf("run with args %v: %v\n%s", args, err, out)
		}
		if want == "" {
			want = string(out)
			continue
		}
		if string(out) != want {
			t.Errorf("args %v changed output:\ngot  %q\nwant %q", args, string(out), want)
		}
	}

	if !strings.HasPrefix(want, "Result: ") {
		t.Errorf("output = %q, want Result: prefix", want)
	}
	if got := strings.Count(want, "\n"); got != 1 {
		t.Errorf("output has %d newlines, want exactly 1", got)
	}
}
