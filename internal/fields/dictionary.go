package fields

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Other is the sentinel label returned when no dictionary keyword matches.
const Other = "other"

// Entry maps one field category to the keywords that select it.
// Entry order and keyword order are both significant: earlier wins.
type Entry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Dictionary is the ordered keyword-to-category rule set driving occupation
// classification. It is loaded once and never mutated afterwards, so it is
// safe for any number of concurrent readers.
type Dictionary struct {
	Entries []Entry `yaml:"categories"`
}

// Load reads a dictionary from a YAML file and validates it.
// Validation warnings are returned alongside the dictionary; a nil error
// means the dictionary is usable.
func Load(path string) (*Dictionary, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read dictionary: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dictionary document.
func Parse(data []byte) (*Dictionary, []string, error) {
	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, nil, fmt.Errorf("decode dictionary: %w", err)
	}
	warnings, err := d.Validate()
	if err != nil {
		return nil, warnings, err
	}
	return &d, warnings, nil
}

// Validate checks structural soundness. Malformed entries (missing name or
// empty keyword list) are fatal; duplicate keywords across entries are only
// reported as warnings, since the earlier entry simply always wins.
func (d *Dictionary) Validate() ([]string, error) {
	if len(d.Entries) == 0 {
		return nil, fmt.Errorf("dictionary has no categories")
	}
	var warnings []string
	seen := map[string]string{} // folded keyword -> owning category
	for i, e := range d.Entries {
		if strings.TrimSpace(e.Name) == "" {
			return warnings, fmt.Errorf("category %d has no name", i+1)
		}
		if len(e.Keywords) == 0 {
			return warnings, fmt.Errorf("category %q has no keywords", e.Name)
		}
		for _, kw := range e.Keywords {
			if kw == "" {
				return warnings, fmt.Errorf("category %q has an empty keyword", e.Name)
			}
			f := fold(kw)
			if prev, ok := seen[f]; ok && prev != e.Name {
				warnings = append(warnings, fmt.Sprintf("keyword %q in %q is shadowed by earlier category %q", kw, e.Name, prev))
				continue
			}
			seen[f] = e.Name
		}
	}
	return warnings, nil
}

// Names returns the category names in dictionary order.
func (d *Dictionary) Names() []string {
	out := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		out[i] = e.Name
	}
	return out
}
