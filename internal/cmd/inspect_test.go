package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLoreFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.lore")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestInspectJSONForest(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	inPath := writeLoreFixture(t, "+ A\n  y = http://e.com\nB")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", "json", "inspect", inPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var forest []struct {
		Kind  string `json:"kind"`
		Name  string `json:"name"`
		Value string `json:"value"`
		Rails []struct {
			Kind  string `json:"kind"`
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"rails"`
	}
	if err := json.Unmarshal(bufs.out.Bytes(), &forest); err != nil {
		t.Fatalf("parse output: %v\n%s", err, bufs.out.String())
	}
	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	if forest[0].Kind != "domain" || forest[0].Name != "A" {
		t.Fatalf("unexpected first root: %+v", forest[0])
	}
	if len(forest[0].Rails) != 1 || forest[0].Rails[0].Kind != "rail" || forest[0].Rails[0].Value != "http://e.com" {
		t.Fatalf("unexpected rails: %+v", forest[0].Rails)
	}
	if forest[1].Kind != "element" || forest[1].Name != "B" {
		t.Fatalf("unexpected second root: %+v", forest[1])
	}
}

func TestInspectQueryFiltersJSON(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	inPath := writeLoreFixture(t, "+ A\n  x\nB")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", "json", "--query", "length", "inspect", inPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if strings.TrimSpace(bufs.out.String()) != "2" {
		t.Fatalf("expected query result 2, got %q", bufs.out.String())
	}
}

func TestInspectQueryExtractsRailTargets(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	inPath := writeLoreFixture(t, "+ A\n  a = http://one\n  + B\n    b = http://two")

	rootCmd.SetArgs([]string{
		"--config", cfgPath, "--output", "json",
		"--query", `.. | select(.kind? == "rail") | .value`,
		"inspect", inPath,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := strings.Fields(bufs.out.String())
	want := []string{`"http://one"`, `"http://two"`}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("query output = %v, want %v", got, want)
	}
}

func TestInspectTableOutput(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	inPath := writeLoreFixture(t, "+ A\n  x")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", "table", "inspect", inPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := bufs.out.String()
	if !strings.Contains(out, "DEPTH") || !strings.Contains(out, "KIND") {
		t.Fatalf("missing table headers:\n%s", out)
	}
	if !strings.Contains(out, "domain") || !strings.Contains(out, "element") {
		t.Fatalf("missing table rows:\n%s", out)
	}
}

func TestInspectTextOutline(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	inPath := writeLoreFixture(t, "+A\n  y   =   http://e.com\nB")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", "text", "inspect", inPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "+ A\n  y = http://e.com\nB\n"
	if bufs.out.String() != want {
		t.Fatalf("outline = %q, want %q", bufs.out.String(), want)
	}
}

func TestInspectLinesMode(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	inPath := writeLoreFixture(t, "+ A\n    deep")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", "table", "inspect", "--lines", inPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := bufs.out.String()
	if !strings.Contains(out, "INDENT") {
		t.Fatalf("missing lines header:\n%s", out)
	}
	if !strings.Contains(out, "2") || !strings.Contains(out, "atom") {
		t.Fatalf("missing tokenized line row:\n%s", out)
	}
}

func TestInspectReadsStdin(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	bufs.in.WriteString("+ S\n  x")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", "json", "inspect", "-"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(bufs.out.String(), `"name": "S"`) {
		t.Fatalf("stdin input not parsed:\n%s", bufs.out.String())
	}
}

func TestInspectEmptyInputIsEmptyArray(t *testing.T) {
	bufs, cfgPath := setupCLI(t)
	inPath := writeLoreFixture(t, "\n   \n")

	rootCmd.SetArgs([]string{"--config", cfgPath, "--output", "json", "inspect", inPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if strings.TrimSpace(bufs.out.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", bufs.out.String())
	}
}

func TestInspectMissingFileIsReadError(t *testing.T) {
	_, cfgPath := setupCLI(t)

	rootCmd.SetArgs([]string{"--config", cfgPath, "inspect", filepath.Join(t.TempDir(), "absent.lore")})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("expected error for missing input")
	}
	if _, ok := err.(*ReadError); !ok {
		t.Fatalf("expected *ReadError, got %T: %v", err, err)
	}
}
