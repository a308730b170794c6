package fields

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
)

// fold normalizes a string for case-insensitive comparison. Case folding is
// the only normalization applied: no trimming, no accent stripping.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Classify maps a free-text occupation string to a field label.
//
// Entries are scanned in dictionary order and keywords in keyword order; the
// first keyword occurring as a literal substring of the case-folded text
// decides the label. Entry order therefore beats keyword specificity: with
// "law" listed before "lawyer", the text "lawyer" classifies as the "law"
// entry's category. When nothing matches, including for the empty string,
// the sentinel Other is returned. Classify is pure and never fails.
func Classify(text string, d *Dictionary) string {
	if text == "" {
		return Other
	}
	folded := fold(text)
	for _, e := range d.Entries {
		for _, kw := range e.Keywords {
			if strings.Contains(folded, fold(kw)) {
				return e.Name
			}
		}
	}
	return Other
}

// ClassifyFirst resolves a record carrying multiple raw occupation values to
// a single label: the first value that classifies as something other than
// Other wins. Records with no values, or with only unmatched values, yield
// Other.
func ClassifyFirst(texts []string, d *Dictionary) string {
	for _, t := range texts {
		if label := Classify(t, d); label != Other {
			return label
		}
	}
	return Other
}

// ClassifyAll labels a batch of records, each carrying zero or more raw
// occupation values, fanning out across records. The result slice is
// index-aligned with the input regardless of worker count. workers <= 0
// selects GOMAXPROCS.
func ClassifyAll(ctx context.Context, records [][]string, d *Dictionary, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]string, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, texts := range records {
		i, texts := i, texts
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = ClassifyFirst(texts, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
