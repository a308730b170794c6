package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	// Reset bound variables that persist across invocations
	clsInputPath = ""
	clsOutputPath = ""
	clsColumn = "povolani"
	clsDelimiter = ""
	clsWorkers = 0
	anaOutputPath = ""
	anaJSON = false
	anaSave = false
	anaDelimiter = ""
	anaSampleRows = 0
	anaMaxRows = 0
	anaGroupBy = nil
	anaWorkers = 0
	dictPath = ""
	refsPath = ""
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
	os.Setenv("HOME", home)
	return home
}

func TestCLI_ClassifyBatch(t *testing.T) {
	setHome(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "kandidati.csv")
	content := "jmeno,povolani\n" +
		"Jan Novák,advokát\n" +
		"Marie Veselá,\"krotitelka slov, zubní lékařka\"\n" +
		"Pavel Malý,krotitel slov\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(dir, "labeled.csv")

	runCmd(t, "classify", "--input", in, "--output", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], ",field") {
		t.Errorf("header missing field column: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",law") {
		t.Errorf("row 1 not labeled law: %q", lines[1])
	}
	// Multi-profession cell: the first listed value with a match wins.
	if !strings.HasSuffix(lines[2], ",medicine") {
		t.Errorf("row 2 not labeled medicine: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], ",other") {
		t.Errorf("row 3 not labeled other: %q", lines[3])
	}
}

func TestCLI_ClassifyCustomDictionary(t *testing.T) {
	setHome(t)
	dir := t.TempDir()
	dict := filepath.Join(dir, "dictionary.yaml")
	if err := os.WriteFile(dict, []byte("categories:\n  - name: brewing\n    keywords: [sládek]\n"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	in := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(in, []byte("jmeno,povolani\nKarel Vrba,sládek\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(dir, "out.csv")

	runCmd(t, "classify", "--dict", dict, "--input", in, "--output", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), ",brewing") {
		t.Fatalf("custom dictionary not applied:\n%s", data)
	}
}

func TestCLI_ClassifyRejectsMalformedDictionary(t *testing.T) {
	setHome(t)
	dir := t.TempDir()
	dict := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(dict, []byte("categories: []\n"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	clsInputPath = ""
	clsOutputPath = ""
	dictPath = ""
	rootCmd.SetArgs([]string{"classify", "--dict", dict, "advokát"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for empty dictionary")
	}
}

func TestCLI_AnalyzeWritesReport(t *testing.T) {
	setHome(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "kandidati.csv")
	content := "jmeno,vek,povolani,strana,kraj,mandat\n" +
		"Ing. Jan Novák,52,advokát,ODS,1,1\n" +
		"Marie Veselá,44,učitelka,ANO 2011,11,0\n" +
		"Pavel Malý,61,krotitel slov,SPD,14,0\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(dir, "report.md")

	runCmd(t, "analyze", in, "--output", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	md := string(data)
	for _, want := range []string{
		"[CANDIDATE SUMMARY]",
		"File: kandidati.csv",
		"Candidates: 3",
		"[BY FIELD]",
		"- law: 1 candidates, 1 mandates (100.0%)",
		"- conservative: 1 candidates, 1 mandates (100.0%)",
		"[UNCLASSIFIED OCCUPATIONS]",
		"- krotitel slov (1)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

func TestCLI_AnalyzeJSON(t *testing.T) {
	setHome(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "kandidati.csv")
	if err := os.WriteFile(in, []byte("jmeno,povolani\nJan Novák,advokát\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(dir, "report.json")

	runCmd(t, "analyze", in, "--json", "--output", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), `"RunID"`) || !strings.Contains(string(data), `"Rows": 1`) {
		t.Fatalf("unexpected JSON report:\n%s", data)
	}
}
