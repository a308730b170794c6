package dataset

// Candidate is one row of the cleaned candidate table.
type Candidate struct {
	Name       string // name with academic degrees stripped
	Degrees    string // stripped degree tokens, space-joined
	Age        int    // 0 when missing or unparseable
	Sex        string // "F"/"M", possibly inferred from surname
	Occupation string // raw free-text occupation
	Field      string // label assigned by the occupation classifier
	Party      string
	Ideology   string // joined from the party reference table
	Region     string // joined from the region reference table
	Mandate    bool   // whether the candidate was elected
	HasMandate bool   // whether the source row carried a mandate value at all
}

// columnAliases maps a canonical column role to the header names it may
// appear under in source tables. Matching is case-insensitive.
var columnAliases = map[string][]string{
	"name":       {"name", "jmeno", "jméno", "jmeno_prijmeni"},
	"age":        {"age", "vek", "věk"},
	"sex":        {"sex", "pohlavi", "pohlaví"},
	"occupation": {"occupation", "povolani", "povolání", "profese"},
	"party":      {"party", "strana", "nazev_strany", "vstrana"},
	"region":     {"region", "kraj", "kraj_kod", "volkraj"},
	"mandate":    {"mandate", "mandat", "mandát", "zvolen"},
}
