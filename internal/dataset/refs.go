package dataset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Refs holds the reference tables joined into the candidate table during
// cleaning. Like the field dictionary, they are loaded once and read-only.
type Refs struct {
	Parties []PartyRef  `yaml:"parties"`
	Regions []RegionRef `yaml:"regions"`
}

// PartyRef maps a party name (and optional short code) to its ideology.
type PartyRef struct {
	Name     string `yaml:"name"`
	Code     string `yaml:"code"`
	Ideology string `yaml:"ideology"`
}

// RegionRef maps a numeric region code from the election exports to the
// region's display name.
type RegionRef struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// LoadRefs reads reference tables from a YAML file.
func LoadRefs(path string) (*Refs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference tables: %w", err)
	}
	var r Refs
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode reference tables: %w", err)
	}
	return &r, nil
}

// Ideology resolves a party name or code, case-insensitively.
func (r *Refs) Ideology(party string) (string, bool) {
	for _, p := range r.Parties {
		if strings.EqualFold(p.Name, party) || (p.Code != "" && strings.EqualFold(p.Code, party)) {
			return p.Ideology, true
		}
	}
	return "", false
}

// RegionName resolves a region code or an already-resolved name.
func (r *Refs) RegionName(region string) (string, bool) {
	for _, reg := range r.Regions {
		if strings.EqualFold(reg.Code, region) || strings.EqualFold(reg.Name, region) {
			return reg.Name, true
		}
	}
	return "", false
}

// DefaultRefs returns the built-in reference tables for the Czech
// parliamentary elections the source exports come from.
func DefaultRefs() *Refs {
	return &Refs{
		Parties: []PartyRef{
			{Name: "Občanská demokratická strana", Code: "ODS", Ideology: "conservative"},
			{Name: "Česká strana sociálně demokratická", Code: "ČSSD", Ideology: "social democratic"},
			{Name: "Komunistická strana Čech a Moravy", Code: "KSČM", Ideology: "communist"},
			{Name: "KDU-ČSL", Code: "KDU", Ideology: "christian democratic"},
			{Name: "TOP 09", Code: "TOP09", Ideology: "liberal conservative"},
			{Name: "ANO 2011", Code: "ANO", Ideology: "centrist"},
			{Name: "Česká pirátská strana", Code: "Piráti", Ideology: "liberal"},
			{Name: "Svoboda a přímá demokracie", Code: "SPD", Ideology: "nationalist"},
			{Name: "Starostové a nezávislí", Code: "STAN", Ideology: "localist"},
			{Name: "Strana zelených", Code: "SZ", Ideology: "green"},
		},
		Regions: []RegionRef{
			{Code: "1", Name: "Hlavní město Praha"},
			{Code: "2", Name: "Středočeský kraj"},
			{Code: "3", Name: "Jihočeský kraj"},
			{Code: "4", Name: "Plzeňský kraj"},
			{Code: "5", Name: "Karlovarský kraj"},
			{Code: "6", Name: "Ústecký kraj"},
			{Code: "7", Name: "Liberecký kraj"},
			{Code: "8", Name: "Královéhradecký kraj"},
			{Code: "9", Name: "Pardubický kraj"},
			{Code: "10", Name: "Kraj Vysočina"},
			{Code: "11", Name: "Jihomoravský kraj"},
			{Code: "12", Name: "Olomoucký kraj"},
			{Code: "13", Name: "Zlínský kraj"},
			{Code: "14", Name: "Moravskoslezský kraj"},
		},
	}
}
