package fields

import (
	"context"
	"testing"
)

func testDict() *Dictionary {
	return &Dictionary{Entries: []Entry{
		{Name: "law", Keywords: []string{"právník", "advokát"}},
		{Name: "medicine", Keywords: []string{"lékař"}},
	}}
}

func TestClassify(t *testing.T) {
	d := testDict()
	cases := []struct {
		text string
		want string
	}{
		{"advokát", "law"},
		{"zubní lékař", "medicine"},
		{"řidič", Other},
		{"", Other},
		{"ADVOKÁT", "law"},
		{"samostatný advokát, Praha", "law"},
	}
	for _, tc := range cases {
		if got := Classify(tc.text, d); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyEntryOrderBeatsKeywordSpecificity(t *testing.T) {
	d := &Dictionary{Entries: []Entry{
		{Name: "general", Keywords: []string{"law"}},
		{Name: "specific", Keywords: []string{"lawyer"}},
	}}
	// "lawyer" contains "law", and the "general" entry comes first.
	if got := Classify("lawyer", d); got != "general" {
		t.Fatalf("Classify(lawyer) = %q, want %q", got, "general")
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	d := &Dictionary{Entries: []Entry{{Name: "law", Keywords: []string{"lawyer"}}}}
	if Classify("LAWYER", d) != Classify("lawyer", d) {
		t.Fatal("classification must not depend on letter case")
	}
}

func TestClassifySubstringNotWholeWord(t *testing.T) {
	d := &Dictionary{Entries: []Entry{{Name: "culture", Keywords: []string{"art"}}}}
	// Literal substring semantics: "art" matches inside "smart".
	if got := Classify("smart contract advisor", d); got != "culture" {
		t.Fatalf("Classify(smart contract advisor) = %q, want %q", got, "culture")
	}
}

func TestClassifyOutputIsClosedSet(t *testing.T) {
	d := testDict()
	known := map[string]bool{Other: true}
	for _, name := range d.Names() {
		known[name] = true
	}
	for _, text := range []string{"advokát", "lékař", "pekař", "", "  ", "ADVOKÁT a lékař"} {
		if got := Classify(text, d); !known[got] {
			t.Errorf("Classify(%q) = %q, not a dictionary category or %q", text, got, Other)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	d := testDict()
	first := Classify("zubní lékař", d)
	for i := 0; i < 100; i++ {
		if got := Classify("zubní lékař", d); got != first {
			t.Fatalf("iteration %d: got %q, want %q", i, got, first)
		}
	}
}

func TestClassifyFirst(t *testing.T) {
	d := testDict()
	cases := []struct {
		texts []string
		want  string
	}{
		{nil, Other},
		{[]string{}, Other},
		{[]string{"řidič"}, Other},
		{[]string{"řidič", "advokát"}, "law"},
		{[]string{"lékař", "advokát"}, "medicine"},
		{[]string{"", "advokát"}, "law"},
	}
	for _, tc := range cases {
		if got := ClassifyFirst(tc.texts, d); got != tc.want {
			t.Errorf("ClassifyFirst(%v) = %q, want %q", tc.texts, got, tc.want)
		}
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	d := testDict()
	texts := []string{"advokát", "řidič", "zubní lékař", "", "právník"}
	want := []string{"law", Other, "medicine", Other, "law"}

	records := make([][]string, len(texts))
	for i, tx := range texts {
		records[i] = []string{tx}
	}
	for _, workers := range []int{0, 1, 3, 16} {
		got, err := ClassifyAll(context.Background(), records, d, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(got) != len(want) {
			t.Fatalf("workers=%d: got %d labels, want %d", workers, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("workers=%d: label[%d] = %q, want %q", workers, i, got[i], want[i])
			}
		}
	}
}

func TestClassifyAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	records := make([][]string, 1000)
	if _, err := ClassifyAll(ctx, records, testDict(), 2); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
