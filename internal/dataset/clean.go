package dataset

import (
	"strings"
)

// degreeTokens are academic titles that prefix or suffix Czech candidate
// names in the source tables. Comparison ignores case and a trailing dot.
var degreeTokens = map[string]bool{
	"bc": true, "bca": true, "ing": true, "mgr": true, "mga": true,
	"judr": true, "mudr": true, "mvdr": true, "rndr": true, "phdr": true,
	"pharmdr": true, "thdr": true, "paeddr": true, "dis": true,
	"phd": true, "ph.d": true, "csc": true, "drsc": true, "mba": true,
	"llm": true, "doc": true, "prof": true,
}

// StripDegrees splits a raw name into the bare name and its degree tokens.
// Degrees may appear before or after the name, separated by spaces or a
// trailing comma ("Ing. Jan Novák, CSc.").
func StripDegrees(raw string) (name, degrees string) {
	var nameParts, degreeParts []string
	for _, tok := range strings.Fields(strings.ReplaceAll(raw, ",", " ")) {
		key := strings.ToLower(strings.TrimSuffix(tok, "."))
		if degreeTokens[key] {
			degreeParts = append(degreeParts, tok)
			continue
		}
		nameParts = append(nameParts, tok)
	}
	return strings.Join(nameParts, " "), strings.Join(degreeParts, " ")
}

// parseMandate normalizes the many spellings of "elected" in source tables.
// The counted-in values mirror the Czech election exports: "1", "*", "ano",
// plus the English forms.
func parseMandate(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "*", "ano", "a", "yes", "true", "zvolen", "zvolena":
		return true
	}
	return false
}

// normalizeSex maps source spellings to "F"/"M"; unknown values pass through
// empty so that surname inference can fill them.
func normalizeSex(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "f", "ž", "z", "zena", "žena", "female":
		return "F"
	case "m", "muž", "muz", "male":
		return "M"
	}
	return ""
}

// InferSex guesses sex from the surname suffix: Czech female surnames end in
// "á" ("Nováková", "Veselá"). Empty names stay unknown.
func InferSex(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	surname := fields[len(fields)-1]
	if strings.HasSuffix(surname, "á") {
		return "F"
	}
	return "M"
}

// SplitOccupations breaks a raw occupation cell into its listed values.
// Source tables separate multiple professions with commas or semicolons.
func SplitOccupations(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Clean normalizes records in place: strips degrees from names, fills
// missing sex from the surname, and joins party ideology and region names
// from the reference tables. Unjoinable values are left as-is and reported.
func Clean(records []Candidate, refs *Refs) []string {
	var warnings []string
	seenParty := map[string]bool{}
	seenRegion := map[string]bool{}
	for i := range records {
		c := &records[i]
		c.Name, c.Degrees = StripDegrees(c.Name)
		if c.Sex == "" {
			c.Sex = InferSex(c.Name)
		}
		if c.Party != "" {
			if ideo, ok := refs.Ideology(c.Party); ok {
				c.Ideology = ideo
			} else if !seenParty[c.Party] {
				seenParty[c.Party] = true
				warnings = append(warnings, "unknown party: "+c.Party)
			}
		}
		if c.Region != "" {
			if name, ok := refs.RegionName(c.Region); ok {
				c.Region = name
			} else if !seenRegion[c.Region] {
				seenRegion[c.Region] = true
				warnings = append(warnings, "unknown region code: "+c.Region)
			}
		}
	}
	return warnings
}
