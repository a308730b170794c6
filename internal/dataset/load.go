package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options controls table loading.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects among ',', ';', '\t'.
	Delimiter rune
	// MaxRows limits rows loaded; 0 means unlimited.
	MaxRows int
}

// Load reads a candidate table from a CSV/TSV file. Column roles are located
// by header name (see columnAliases); a missing name or occupation column is
// fatal, anything else degrades to zero values plus a warning. Per-row
// anomalies never abort the load.
func Load(path string, opt Options) ([]Candidate, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path, f)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("empty table: %s", path)
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for role, aliases := range columnAliases {
		for _, a := range aliases {
			for i, h := range header {
				if strings.EqualFold(strings.TrimSpace(h), a) {
					idx[role] = i
				}
			}
			if _, ok := idx[role]; ok {
				break
			}
		}
	}
	if _, ok := idx["name"]; !ok {
		return nil, nil, fmt.Errorf("no name column in header %v", header)
	}
	if _, ok := idx["occupation"]; !ok {
		return nil, nil, fmt.Errorf("no occupation column in header %v", header)
	}

	var warnings []string
	for _, role := range []string{"age", "party", "region", "mandate"} {
		if _, ok := idx[role]; !ok {
			warnings = append(warnings, fmt.Sprintf("no %s column; values default to empty", role))
		}
	}

	cell := func(rec []string, role string) string {
		i, ok := idx[role]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []Candidate
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, warnings, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		if opt.MaxRows > 0 && len(out) >= opt.MaxRows {
			continue
		}
		c := Candidate{
			Name:       cell(rec, "name"),
			Sex:        normalizeSex(cell(rec, "sex")),
			Occupation: cell(rec, "occupation"),
			Party:      cell(rec, "party"),
			Region:     cell(rec, "region"),
		}
		if v := cell(rec, "age"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				warnings = append(warnings, fmt.Sprintf("row %d: unparseable age %q", row, v))
			} else {
				c.Age = n
			}
		}
		if v := cell(rec, "mandate"); v != "" {
			c.Mandate = parseMandate(v)
			c.HasMandate = true
		}
		out = append(out, c)
	}
	return out, warnings, nil
}

// sniffDelimiter picks a delimiter from the filename extension, falling back
// to inspecting the first line.
func sniffDelimiter(path string, f *os.File) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	buf := make([]byte, 4096)
	n, _ := f.Read(buf)
	_, _ = f.Seek(0, io.SeekStart)
	line, _, _ := strings.Cut(string(buf[:n]), "\n")
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
