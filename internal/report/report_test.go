package report

import (
	"strings"
	"testing"

	"github.com/kandidlabs/kandid-cli/internal/dataset"
)

func sampleRecords() []dataset.Candidate {
	return []dataset.Candidate{
		{Name: "Jan Novák", Age: 52, Sex: "M", Occupation: "advokát", Field: "law", Party: "ODS", Ideology: "conservative", Region: "Hlavní město Praha", Mandate: true, HasMandate: true},
		{Name: "Marie Veselá", Age: 44, Sex: "F", Occupation: "učitelka", Field: "education", Party: "ANO 2011", Ideology: "centrist", Region: "Jihomoravský kraj", Mandate: false, HasMandate: true},
		{Name: "Pavel Malý", Age: 61, Sex: "M", Occupation: "krotitel slov", Field: "other", Party: "ODS", Ideology: "conservative", Region: "Jihomoravský kraj", Mandate: false, HasMandate: true},
		{Name: "Eva Malá", Age: 38, Sex: "F", Occupation: "krotitel slov", Field: "other", Party: "SPD", Ideology: "nationalist", Region: "Zlínský kraj", Mandate: true, HasMandate: true},
	}
}

func TestBuild(t *testing.T) {
	rep := Build(sampleRecords(), "kandidati.csv", DefaultOptions())

	if rep.RunID == "" {
		t.Error("report has no run ID")
	}
	if rep.Rows != 4 || rep.Labeled != 2 {
		t.Errorf("rows/labeled = %d/%d, want 4/2", rep.Rows, rep.Labeled)
	}
	if rep.Mandates != 2 || rep.WithVote != 4 {
		t.Errorf("mandates = %d of %d, want 2 of 4", rep.Mandates, rep.WithVote)
	}
	if rep.Age.Count != 4 || rep.Age.Min != 38 || rep.Age.Max != 61 {
		t.Errorf("age summary mismatch: %+v", rep.Age)
	}
	if got := rep.Age.Mean; got < 48.7 || got > 48.8 {
		t.Errorf("age mean = %f, want 48.75", got)
	}

	if len(rep.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(rep.Groups))
	}
	byField := rep.Groups[0]
	if byField.Dimension != "field" {
		t.Fatalf("first group dimension = %q, want field", byField.Dimension)
	}
	// "other" dominates (2 rows, 1 mandate), then education/law alphabetically.
	if byField.Buckets[0].Value != "other" || byField.Buckets[0].Count != 2 || byField.Buckets[0].Mandates != 1 {
		t.Errorf("field bucket mismatch: %+v", byField.Buckets[0])
	}
	if r := byField.Buckets[0].Rate(); r != 0.5 {
		t.Errorf("other mandate rate = %f, want 0.5", r)
	}

	if len(rep.Unmatched) != 1 || rep.Unmatched[0].Value != "krotitel slov" || rep.Unmatched[0].Count != 2 {
		t.Errorf("unmatched mismatch: %+v", rep.Unmatched)
	}
}

func TestMarkdown(t *testing.T) {
	rep := Build(sampleRecords(), "kandidati.csv", DefaultOptions())
	rep.Warnings = []string{"unknown party: Strana mírného pokroku"}
	md := rep.Markdown()

	for _, want := range []string{
		"[CANDIDATE SUMMARY]",
		"File: kandidati.csv",
		"Candidates: 4",
		"Classified: 2 (50.0%)",
		"Mandates: 2 of 4 (50.0%)",
		"[BY FIELD]",
		"[BY IDEOLOGY]",
		"- conservative: 2 candidates, 1 mandates (50.0%)",
		"[BY SEX]",
		"[UNCLASSIFIED OCCUPATIONS]",
		"- krotitel slov (2)",
		"[SAMPLE ROWS]",
		"| Jan Novák | 52 | M | law | ODS | Hlavní město Praha | true |",
		"[NOTES]",
		"- unknown party: Strana mírného pokroku",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestBuildGroupByOverride(t *testing.T) {
	opt := DefaultOptions()
	opt.GroupBy = []string{"region"}
	rep := Build(sampleRecords(), "kandidati.csv", opt)
	if len(rep.Groups) != 1 || rep.Groups[0].Dimension != "region" {
		t.Fatalf("group override not applied: %+v", rep.Groups)
	}
	if rep.Groups[0].Buckets[0].Value != "Jihomoravský kraj" || rep.Groups[0].Buckets[0].Count != 2 {
		t.Fatalf("region bucket mismatch: %+v", rep.Groups[0].Buckets)
	}
}

func TestBuildEmpty(t *testing.T) {
	rep := Build(nil, "empty.csv", DefaultOptions())
	if rep.Rows != 0 || rep.Age.Count != 0 || rep.Age.Min != 0 {
		t.Fatalf("empty report mismatch: %+v", rep)
	}
	md := rep.Markdown()
	if !strings.Contains(md, "Candidates: 0") {
		t.Fatalf("markdown mismatch:\n%s", md)
	}
}
