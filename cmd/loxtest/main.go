// Command loxtest is the "test harness that shells out running example
// programs" spec.md §1 names as out of core scope. Grounded on the
// teacher's test/ package (collect.go/compare.go/run.go), which diffed
// a target binary's output against a reference `clox` for every file
// under test/cases. There's no second implementation here to diff
// against, so this harness diffs the golox binary's output against
// recorded golden fixtures instead (testdata/golden/*.json), the way
// SPEC_FULL.md §1.1 describes.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// golden mirrors the teacher's TestResult shape (stdout/stderr/exit
// code), but recorded ahead of time instead of captured from a
// reference run.
type golden struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

type testCase struct {
	Name       string
	ScriptPath string
	GoldenPath string
}

func main() {
	os.Exit(runSuite())
}

func runSuite() int {
	cases, err := discover("testdata")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	binPath, cleanup, err := buildGolox()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer cleanup()

	failed := 0
	for _, tc := range cases {
		ok, summary := runCase(binPath, tc)
		fmt.Println(summary)
		if !ok {
			failed++
		}
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%d/%d passed\n", len(cases)-failed, len(cases))
	if failed > 0 {
		return 1
	}
	return 0
}

// discover collects every testdata/*.lox script paired with its
// testdata/golden/<name>.json fixture (teacher's collectSuites, minus
// the suite-subdirectory nesting this repo doesn't use).
func discover(dir string) ([]testCase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var cases []testCase
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lox" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".lox")
		cases = append(cases, testCase{
			Name:       name,
			ScriptPath: filepath.Join(dir, entry.Name()),
			GoldenPath: filepath.Join(dir, "golden", name+".json"),
		})
	}
	return cases, nil
}

func buildGolox() (path string, cleanup func(), err error) {
	tmp, err := os.MkdirTemp("", "golox-test")
	if err != nil {
		return "", nil, err
	}
	bin := filepath.Join(tmp, "golox")

	cmd := exec.Command("go", "build", "-o", bin, "./cmd/golox")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.RemoveAll(tmp)
		return "", nil, fmt.Errorf("building golox: %w", err)
	}

	return bin, func() { os.RemoveAll(tmp) }, nil
}

func runCase(binPath string, tc testCase) (bool, string) {
	want, err := loadGolden(tc.GoldenPath)
	if err != nil {
		return false, fmt.Sprintf("  [%s] %s: %v", color.RedString("error"), tc.Name, err)
	}

	var stdout, stderr strings.Builder
	cmd := exec.Command(binPath, tc.ScriptPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	exitCode := 0
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return false, fmt.Sprintf("  [%s] %s: %v", color.RedString("error"), tc.Name, runErr)
		}
	}

	got := golden{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
	if got == want {
		return true, fmt.Sprintf("  [%s] %s", color.GreenString("passed"), tc.Name)
	}

	diff := fmt.Sprintf(
		"expected stdout=%q stderr=%q exit=%d\n       got stdout=%q stderr=%q exit=%d",
		want.Stdout, want.Stderr, want.ExitCode, got.Stdout, got.Stderr, got.ExitCode,
	)
	return false, fmt.Sprintf("  [%s] %s\n       %s", color.RedString("failed"), tc.Name, diff)
}

func loadGolden(path string) (golden, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return golden{}, fmt.Errorf("reading golden %s: %w", path, err)
	}
	var g golden
	if err := json.Unmarshal(data, &g); err != nil {
		return golden{}, fmt.Errorf("parsing golden %s: %w", path, err)
	}
	return g, nil
}
