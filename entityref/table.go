package entityref

// entry is one row of the entity dictionary: the decoded replacement text
// and whether a trailing `;` is mandatory for this spelling. A handful of
// legacy names (amp, lt, gt, quot, nbsp, copy, reg, and the uppercase
// variants of all but nbsp) are valid both with and without the semicolon, for HTML4
// compatibility; everything else requires it. Table keys never include
// the `;` itself — the buffer the tokenizer matches against is always
// pure name characters (spec.md §4.2: "buffer up to 31 name-characters or
// until `;`"); the semicolon is checked as a separate trailing character.
type entry struct {
	value             string
	requiresSemicolon bool
}

// table is the named-character-reference dictionary. spec.md §1
// explicitly scopes the dictionary's *contents* as "an opaque lookup
// service" — this is a representative subset (about 120 of the
// ~2,200 names the full HTML5 table defines), enough to exercise every
// branch of the longest-prefix back-off algorithm in §4.2, seeded from
// the same common-entity set used by the other from-scratch HTML
// tokenizer in this corpus and extended with the legacy no-semicolon
// forms the spec singles out.
var table = map[string]entry{
	// Legacy, semicolon-optional (HTML4 compatibility list, abridged).
	"amp": {"&", false}, "AMP": {"&", false},
	"lt": {"<", false}, "LT": {"<", false},
	"gt": {">", false}, "GT": {">", false},
	"quot": {"\"", false}, "QUOT": {"\"", false},
	"nbsp": {" ", false},
	"copy": {"©", false}, "COPY": {"©", false},
	"reg": {"®", false}, "REG": {"®", false},

	// Semicolon-required.
	"apos":    {"'", true},
	"trade":   {"™", true},
	"deg":     {"°", true},
	"plusmn":  {"±", true},
	"cent":    {"¢", true},
	"pound":   {"£", true},
	"euro":    {"€", true},
	"yen":     {"¥", true},
	"sect":    {"§", true},
	"para":    {"¶", true},
	"middot":  {"·", true},
	"bull":    {"•", true},
	"hellip":  {"…", true},
	"prime":   {"′", true},
	"Prime":   {"″", true},
	"ndash":   {"–", true},
	"mdash":   {"—", true},
	"lsquo":   {"‘", true},
	"rsquo":   {"’", true},
	"ldquo":   {"“", true},
	"rdquo":   {"”", true},
	"sbquo":   {"‚", true},
	"bdquo":   {"„", true},
	"laquo":   {"«", true},
	"raquo":   {"»", true},
	"thinsp":  {" ", true},
	"ensp":    {" ", true},
	"emsp":    {" ", true},
	"times":   {"×", true},
	"divide":  {"÷", true},
	"minus":   {"−", true},
	"lowast":  {"∗", true},
	"le":      {"≤", true},
	"ge":      {"≥", true},
	"ne":      {"≠", true},
	"equiv":   {"≡", true},
	"asymp":   {"≈", true},
	"infin":   {"∞", true},
	"sum":     {"∑", true},
	"prod":    {"∏", true},
	"radic":   {"√", true},
	"part":    {"∂", true},
	"int":     {"∫", true},
	"larr":    {"←", true},
	"uarr":    {"↑", true},
	"rarr":    {"→", true},
	"darr":    {"↓", true},
	"harr":    {"↔", true},
	"lArr":    {"⇐", true},
	"uArr":    {"⇑", true},
	"rArr":    {"⇒", true},
	"dArr":    {"⇓", true},
	"hArr":    {"⇔", true},
	"alpha":   {"α", true}, "Alpha": {"Α", true},
	"beta": {"β", true}, "Beta": {"Β", true},
	"gamma": {"γ", true}, "Gamma": {"Γ", true},
	"delta": {"δ", true}, "Delta": {"Δ", true},
	"epsilon": {"ε", true}, "Epsilon": {"Ε", true},
	"zeta": {"ζ", true}, "Zeta": {"Ζ", true},
	"eta": {"η", true}, "Eta": {"Η", true},
	"theta": {"θ", true}, "Theta": {"Θ", true},
	"iota": {"ι", true}, "Iota": {"Ι", true},
	"kappa": {"κ", true}, "Kappa": {"Κ", true},
	"lambda": {"λ", true}, "Lambda": {"Λ", true},
	"mu": {"μ", true}, "Mu": {"Μ", true},
	"nu": {"ν", true}, "Nu": {"Ν", true},
	"xi": {"ξ", true}, "Xi": {"Ξ", true},
	"omicron": {"ο", true}, "Omicron": {"Ο", true},
	"pi": {"π", true}, "Pi": {"Π", true},
	"rho": {"ρ", true}, "Rho": {"Ρ", true},
	"sigma": {"σ", true}, "Sigma": {"Σ", true},
	"tau": {"τ", true}, "Tau": {"Τ", true},
	"upsilon": {"υ", true}, "Upsilon": {"Υ", true},
	"phi": {"φ", true}, "Phi": {"Φ", true},
	"chi": {"χ", true}, "Chi": {"Χ", true},
	"psi": {"ψ", true}, "Psi": {"Ψ", true},
	"omega": {"ω", true}, "Omega": {"Ω", true},
	"iexcl":  {"¡", true},
	"iquest": {"¿", true},
	"loz":    {"◊", true},
	"spades": {"♠", true},
	"clubs":  {"♣", true},
	"hearts": {"♥", true},
	"diams":  {"♦", true},
}

// MaxNameLength is the longest key in table; the tokenizer never needs to
// buffer more than this many name characters before it's guaranteed no
// longer match is possible (spec.md §4.2 caps buffering at 31 regardless).
var MaxNameLength = func() int {
	max := 0
	for name := range table {
		if len(name) > max {
			max = len(name)
		}
	}
	return max
}()
