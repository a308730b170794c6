package fields

// DefaultDictionary returns the built-in category dictionary used when no
// dictionary file is configured. Entry order is deliberate: more specific
// professional fields come before broad catch-all categories so that e.g.
// "učitel ekonomie" lands in education rather than economy.
func DefaultDictionary() *Dictionary {
	return &Dictionary{Entries: []Entry{
		{Name: "law", Keywords: []string{"právník", "právnička", "advokát", "soudce", "notář", "exekutor"}},
		{Name: "medicine", Keywords: []string{"lékař", "zubní", "zdravotní", "sestra", "farmaceut", "veterinář", "sanitář"}},
		{Name: "education", Keywords: []string{"učitel", "pedagog", "ředitel školy", "vychovatel", "lektor", "profesor", "docent"}},
		{Name: "science", Keywords: []string{"vědec", "výzkum", "akademi", "fyzik", "chemik", "biolog", "historik"}},
		{Name: "engineering", Keywords: []string{"inženýr", "technik", "projektant", "konstruktér", "programátor", "informatik", "it "}},
		{Name: "economy", Keywords: []string{"ekonom", "účetní", "auditor", "bankéř", "finanč", "daňov", "makléř"}},
		{Name: "agriculture", Keywords: []string{"zemědělec", "agronom", "farmář", "lesník", "zahradník", "chovatel"}},
		{Name: "transport", Keywords: []string{"řidič", "strojvedoucí", "pilot", "dopravce", "logisti"}},
		{Name: "trade", Keywords: []string{"podnikatel", "živnostník", "obchodník", "prodavač", "manažer", "jednatel"}},
		{Name: "labour", Keywords: []string{"dělník", "zedník", "truhlář", "svářeč", "elektrikář", "instalatér", "kuchař", "číšník"}},
		{Name: "public administration", Keywords: []string{"starost", "úředník", "tajemník", "hejtman", "zastupitel", "poslanec", "senátor", "diplomat"}},
		{Name: "culture", Keywords: []string{"umělec", "herec", "hudebník", "spisovatel", "novinář", "režisér", "výtvarník", "fotograf"}},
		{Name: "security", Keywords: []string{"policist", "voják", "hasič", "strážník", "bezpečnost"}},
		{Name: "clergy", Keywords: []string{"kněz", "farář", "kazatel", "teolog", "duchovní"}},
		{Name: "retired", Keywords: []string{"důchodce", "důchodkyně", "penzist"}},
		{Name: "student", Keywords: []string{"student"}},
	}}
}
