// Package integration provides end-to-end tests for cbib commands.
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	cbibBinary     string
	cbibBinaryOnce sync.Once
	cbibBinaryErr  error
)

// getCbibBinary builds the cbib binary once and returns its path.
func getCbibBinary(t *testing.T) string {
	t.Helper()
	cbibBinaryOnce.Do(func() {
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			cbibBinaryErr = os.ErrInvalid
			return
		}
		moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))

		tmpDir, err := os.MkdirTemp("", "cbib-test-*")
		if err != nil {
			cbibBinaryErr = err
			return
		}
		cbibBinary = filepath.Join(tmpDir, "cbib")

		cmd := exec.Command("go", "build", "-o", cbibBinary, "./cmd/cbib")
		cmd.Dir = moduleRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			cbibBinaryErr = &buildError{output: string(output), err: err}
			return
		}
	})
	if cbibBinaryErr != nil {
		t.Fatalf("failed to build cbib: %v", cbibBinaryErr)
	}
	return cbibBinary
}

type buildError struct {
	output string
	err    error
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

// runCbib executes cbib with the given args inside dir.
func runCbib(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	bin := getCbibBinary(t)
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return string(output), err
}

const testBib = `@article{Huttley.2025,
  author    = {Huttley, Gavin},
  title     = {A method},
  journal   = {Journal of Methods},
  year      = {2025},
  volume    = {3},
  pages     = {100--110},
}

@misc{Smith.2024,
  author    = {Smith, Jane},
  title     = {A dataset},
  year      = {2024},
}`

func TestInitAddExport(t *testing.T) {
	dir := t.TempDir()

	output, err := runCbib(t, dir, "init")
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, output)
	}
	if _, err := os.Stat(filepath.Join(dir, ".cbib", "config.yml")); err != nil {
		t.Fatalf("init did not create config.yml: %v", err)
	}

	bibPath := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(bibPath, []byte(testBib), 0644); err != nil {
		t.Fatal(err)
	}

	output, err = runCbib(t, dir, "add", bibPath)
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, output)
	}
	var added struct {
		Added   int `json:"added"`
		Skipped int `json:"skipped"`
	}
	if err := json.Unmarshal([]byte(output), &added); err != nil {
		t.Fatalf("add output not JSON: %v\n%s", err, output)
	}
	if added.Added != 2 {
		t.Errorf("add reported %d added, want 2", added.Added)
	}

	// Re-adding the same file stores nothing new.
	output, err = runCbib(t, dir, "add", bibPath)
	if err != nil {
		t.Fatalf("second add failed: %v\n%s", err, output)
	}
	if err := json.Unmarshal([]byte(output), &added); err != nil {
		t.Fatalf("add output not JSON: %v\n%s", err, output)
	}
	if added.Added != 0 || added.Skipped != 2 {
		t.Errorf("second add = %+v, want 0 added / 2 skipped", added)
	}

	output, err = runCbib(t, dir, "export")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, output)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bibliography.bib"))
	if err != nil {
		t.Fatalf("export did not write bibliography.bib: %v", err)
	}
	for _, want := range []string{"@article{Huttley.2025,", "@misc{Smith.2024,", "  pages     = {100--110},"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("bibliography missing %q:\n%s", want, data)
		}
	}
}

func TestListSummaries(t *testing.T) {
	dir := t.TempDir()

	if output, err := runCbib(t, dir, "init"); err != nil {
		t.Fatalf("init failed: %v\n%s", err, output)
	}

	bibPath := filepath.Join(dir, "refs.bib")
	if err := os.WriteFile(bibPath, []byte(testBib), 0644); err != nil {
		t.Fatal(err)
	}
	if output, err := runCbib(t, dir, "add", bibPath, "--app", "cogent3"); err != nil {
		t.Fatalf("add failed: %v\n%s", err, output)
	}

	output, err := runCbib(t, dir, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, output)
	}
	var results []struct {
		App     string `json:"app"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(output), &results); err != nil {
		t.Fatalf("list output not JSON: %v\n%s", err, output)
	}
	if len(results) != 2 {
		t.Fatalf("list returned %d entries, want 2", len(results))
	}
	if results[0].App != "cogent3" {
		t.Errorf("list app = %q, want cogent3", results[0].App)
	}
	if !strings.Contains(results[0].Summary, "Huttley 2025") {
		t.Errorf("list summary = %q", results[0].Summary)
	}
}

func TestCommandsOutsideWorkspace(t *testing.T) {
	dir := t.TempDir()

	_, err := runCbib(t, dir, "list")
	if err == nil {
		t.Fatal("list outside a workspace should fail")
	}
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2", exitErr.ExitCode())
	}
}
