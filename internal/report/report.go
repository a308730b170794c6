package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/kandidlabs/kandid-cli/internal/dataset"
	"github.com/kandidlabs/kandid-cli/internal/fields"
)

// Options controls report building.
type Options struct {
	// SampleRows determines how many example rows to include in the report.
	SampleRows int
	// TopUnmatched limits how many unclassified occupation strings to list.
	TopUnmatched int
	// GroupBy selects the grouping dimensions; defaults to field, ideology
	// and sex. Supported: field, ideology, sex, region, party.
	GroupBy []string
}

// DefaultOptions returns reasonable defaults for a candidate report.
func DefaultOptions() Options {
	return Options{
		SampleRows:   5,
		TopUnmatched: 10,
		GroupBy:      []string{"field", "ideology", "sex"},
	}
}

// Report is a markdown-friendly summary of a labeled candidate table.
type Report struct {
	RunID     string
	Name      string
	Rows      int
	Labeled   int // rows with a field label other than the sentinel
	Mandates  int
	WithVote  int // rows that carried a mandate value at all
	Age       AgeSummary
	Groups    []GroupSummary
	Unmatched []ValueCount
	Samples   []dataset.Candidate
	Warnings  []string
}

// AgeSummary captures numeric statistics over candidate ages.
type AgeSummary struct {
	Count     int
	Min, Max  int
	Mean, Std float64
}

// GroupSummary aggregates one grouping dimension.
type GroupSummary struct {
	Dimension string
	Buckets   []Bucket
}

// Bucket is one value of a grouping dimension with its mandate outcome.
type Bucket struct {
	Value    string
	Count    int
	Mandates int
}

// Rate is the share of the bucket that won a mandate.
func (b Bucket) Rate() float64 {
	if b.Count == 0 {
		return 0
	}
	return float64(b.Mandates) / float64(b.Count)
}

// ValueCount is a raw value with its occurrence count.
type ValueCount struct {
	Value string
	Count int
}

// Build summarizes a cleaned, labeled candidate table in a single pass.
func Build(records []dataset.Candidate, name string, opt Options) *Report {
	if opt.SampleRows <= 0 {
		opt.SampleRows = 5
	}
	if opt.TopUnmatched <= 0 {
		opt.TopUnmatched = 10
	}
	if len(opt.GroupBy) == 0 {
		opt.GroupBy = DefaultOptions().GroupBy
	}

	rep := &Report{RunID: uuid.NewString(), Name: name}
	rep.Age.Min = math.MaxInt

	type acc struct {
		count, mandates int
	}
	groups := make([]map[string]*acc, len(opt.GroupBy))
	for i := range groups {
		groups[i] = map[string]*acc{}
	}
	unmatched := map[string]int{}

	// Welford accumulators for age.
	var n int
	var mean, m2 float64

	for _, c := range records {
		rep.Rows++
		if c.Field != "" && c.Field != fields.Other {
			rep.Labeled++
		} else if strings.TrimSpace(c.Occupation) != "" {
			unmatched[c.Occupation]++
		}
		if c.HasMandate {
			rep.WithVote++
			if c.Mandate {
				rep.Mandates++
			}
		}
		if c.Age > 0 {
			n++
			if c.Age < rep.Age.Min {
				rep.Age.Min = c.Age
			}
			if c.Age > rep.Age.Max {
				rep.Age.Max = c.Age
			}
			delta := float64(c.Age) - mean
			mean += delta / float64(n)
			m2 += delta * (float64(c.Age) - mean)
		}
		for i, dim := range opt.GroupBy {
			key := groupKey(c, dim)
			if key == "" {
				key = "(unknown)"
			}
			a := groups[i][key]
			if a == nil {
				a = &acc{}
				groups[i][key] = a
			}
			a.count++
			if c.Mandate {
				a.mandates++
			}
		}
		if len(rep.Samples) < opt.SampleRows {
			rep.Samples = append(rep.Samples, c)
		}
	}

	rep.Age.Count = n
	if n == 0 {
		rep.Age.Min = 0
	}
	rep.Age.Mean = mean
	if n > 1 {
		rep.Age.Std = math.Sqrt(m2 / float64(n-1))
	}

	for i, dim := range opt.GroupBy {
		gs := GroupSummary{Dimension: dim}
		for k, a := range groups[i] {
			gs.Buckets = append(gs.Buckets, Bucket{Value: k, Count: a.count, Mandates: a.mandates})
		}
		sort.Slice(gs.Buckets, func(a, b int) bool {
			if gs.Buckets[a].Count == gs.Buckets[b].Count {
				return gs.Buckets[a].Value < gs.Buckets[b].Value
			}
			return gs.Buckets[a].Count > gs.Buckets[b].Count
		})
		rep.Groups = append(rep.Groups, gs)
	}

	for v, cnt := range unmatched {
		rep.Unmatched = append(rep.Unmatched, ValueCount{Value: v, Count: cnt})
	}
	sort.Slice(rep.Unmatched, func(i, j int) bool {
		if rep.Unmatched[i].Count == rep.Unmatched[j].Count {
			return rep.Unmatched[i].Value < rep.Unmatched[j].Value
		}
		return rep.Unmatched[i].Count > rep.Unmatched[j].Count
	})
	if len(rep.Unmatched) > opt.TopUnmatched {
		rep.Unmatched = rep.Unmatched[:opt.TopUnmatched]
	}
	return rep
}

func groupKey(c dataset.Candidate, dim string) string {
	switch strings.ToLower(dim) {
	case "field":
		return c.Field
	case "ideology":
		return c.Ideology
	case "sex":
		return c.Sex
	case "region":
		return c.Region
	case "party":
		return c.Party
	}
	return ""
}

// Markdown renders a compact report suitable for standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[CANDIDATE SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Run: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf("Candidates: %d\n", r.Rows))
	if r.Rows > 0 {
		b.WriteString(fmt.Sprintf("Classified: %d (%.1f%%)\n", r.Labeled, 100*float64(r.Labeled)/float64(r.Rows)))
	}
	if r.WithVote > 0 {
		b.WriteString(fmt.Sprintf("Mandates: %d of %d (%.1f%%)\n", r.Mandates, r.WithVote, 100*float64(r.Mandates)/float64(r.WithVote)))
	}
	if r.Age.Count > 0 {
		b.WriteString(fmt.Sprintf("Age: mean %.1f, std %.1f (min %d, max %d, n=%d)\n",
			r.Age.Mean, r.Age.Std, r.Age.Min, r.Age.Max, r.Age.Count))
	}

	for _, g := range r.Groups {
		b.WriteString(fmt.Sprintf("\n[BY %s]\n", strings.ToUpper(g.Dimension)))
		for _, bk := range g.Buckets {
			b.WriteString(fmt.Sprintf("- %s: %d candidates, %d mandates (%.1f%%)\n",
				safeVal(bk.Value), bk.Count, bk.Mandates, 100*bk.Rate()))
		}
	}

	if len(r.Unmatched) > 0 {
		b.WriteString("\n[UNCLASSIFIED OCCUPATIONS]\n")
		for _, u := range r.Unmatched {
			b.WriteString(fmt.Sprintf("- %s (%d)\n", safeVal(u.Value), u.Count))
		}
	}

	if len(r.Samples) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| name | age | sex | field | party | region | mandate |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
		for _, c := range r.Samples {
			mandate := ""
			if c.HasMandate {
				mandate = fmt.Sprintf("%t", c.Mandate)
			}
			b.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %s | %s |\n",
				safeVal(c.Name), c.Age, c.Sex, safeVal(c.Field), safeVal(c.Party), safeVal(c.Region), mandate))
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
