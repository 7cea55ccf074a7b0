package morph

// irregularVerbs maps base forms to their inflected forms. The table serves
// both directions: reverse lookup overrides rule-based lemmatization for
// high-frequency irregular forms, and forward lookup feeds variant
// expansion. Kept as an ordered slice so the reverse map resolves a
// colliding inflected form to the first base that claims it.
var irregularVerbs = []struct {
	base  string
	forms []string
}{
	{"be", []string{"was", "were", "been", "being", "am", "is", "are"}},
	{"have", []string{"has", "had", "having"}},
	{"do", []string{"does", "did", "done", "doing"}},
	{"go", []string{"goes", "went", "gone", "going"}},
	{"say", []string{"says", "said", "saying"}},
	{"make", []string{"makes", "made", "making"}},
	{"take", []string{"takes", "took", "taken", "taking"}},
	{"come", []string{"comes", "came", "coming"}},
	{"see", []string{"sees", "saw", "seen", "seeing"}},
	{"know", []string{"knows", "knew", "known", "knowing"}},
	{"give", []string{"gives", "gave", "given", "giving"}},
	{"think", []string{"thinks", "thought", "thinking"}},
	{"tell", []string{"tells", "told", "telling"}},
	{"become", []string{"becomes", "became", "becoming"}},
	{"leave", []string{"leaves", "left", "leaving"}},
	{"put", []string{"puts", "putting"}},
	{"bring", []string{"brings", "brought", "bringing"}},
	{"keep", []string{"keeps", "kept", "keeping"}},
	{"hold", []string{"holds", "held", "holding"}},
	{"stand", []string{"stands", "stood", "standing"}},
	{"hear", []string{"hears", "heard", "hearing"}},
	{"let", []string{"lets", "letting"}},
	{"mean", []string{"means", "meant", "meaning"}},
	{"set", []string{"sets", "setting"}},
	{"meet", []string{"meets", "met", "meeting"}},
	{"run", []string{"runs", "ran", "running"}},
	{"pay", []string{"pays", "paid", "paying"}},
	{"sit", []string{"sits", "sat", "sitting"}},
	{"send", []string{"sends", "sent", "sending"}},
	{"fall", []string{"falls", "fell", "fallen", "falling"}},
	{"read", []string{"reads", "reading"}}, // past tense spelled the same
	{"grow", []string{"grows", "grew", "grown", "growing"}},
	{"lose", []string{"loses", "lost", "losing"}},
	{"spend", []string{"spends", "spent", "spending"}},
	{"cut", []string{"cuts", "cutting"}},
	{"build", []string{"builds", "built", "building"}},
	{"ride", []string{"rides", "rode", "ridden", "riding"}},
	{"hide", []string{"hides", "hid", "hidden", "hiding"}},
	{"bite", []string{"bites", "bit", "bitten", "biting"}},
	{"write", []string{"writes", "wrote", "written", "writing"}},
	{"drive", []string{"drives", "drove", "driven", "driving"}},
	{"rise", []string{"rises", "rose", "risen", "rising"}},
	{"choose", []string{"chooses", "chose", "chosen", "choosing"}},
	{"freeze", []string{"freezes", "froze", "frozen", "freezing"}},
	{"speak", []string{"speaks", "spoke", "spoken", "speaking"}},
	{"steal", []string{"steals", "stole", "stolen", "stealing"}},
	{"break", []string{"breaks", "broke", "broken", "breaking"}},
	{"wake", []string{"wakes", "woke", "woken", "waking"}},
	{"forget", []string{"forgets", "forgot", "forgotten", "forgetting"}},
	{"get", []string{"gets", "got", "gotten", "getting"}},
	{"begin", []string{"begins", "began", "begun", "beginning"}},
	{"sing", []string{"sings", "sang", "sung", "singing"}},
	{"ring", []string{"rings", "rang", "rung", "ringing"}},
	{"drink", []string{"drinks", "drank", "drunk", "drinking"}},
	{"swim", []string{"swims", "swam", "swum", "swimming"}},
	{"sink", []string{"sinks", "sank", "sunk", "sinking"}},
	{"shrink", []string{"shrinks", "shrank", "shrunk", "shrinking"}},
	{"stink", []string{"stinks", "stank", "stunk", "stinking"}},
	{"spring", []string{"springs", "sprang", "sprung", "springing"}},
	{"string", []string{"strings", "strung", "stringing"}},
	{"wring", []string{"wrings", "wrung", "wringing"}},
	{"cling", []string{"clings", "clung", "clinging"}},
	{"fling", []string{"flings", "flung", "flinging"}},
	{"sling", []string{"slings", "slung", "slinging"}},
	{"swing", []string{"swings", "swung", "swinging"}},
	{"hang", []string{"hangs", "hung", "hanging"}},
	{"bind", []string{"binds", "bound", "binding"}},
	{"find", []string{"finds", "found", "finding"}},
	{"wind", []string{"winds", "wound", "winding"}},
	// "ground" as a noun must not lemmatize to "grind".
	{"ground", []string{"grounds", "grounded", "grounding"}},
}

var (
	inflectedToBase = make(map[string]string)
	baseToForms     = make(map[string][]string, len(irregularVerbs))
)

func init() {
	for _, v := range irregularVerbs {
		baseToForms[v.base] = v.forms
		for _, form := range v.forms {
			if _, ok := inflectedToBase[form]; !ok {
				inflectedToBase[form] = v.base
			}
		}
	}
}

// irregularBase returns the base form of a known irregular inflection.
func irregularBase(word string) (string, bool) {
	base, ok := inflectedToBase[word]
	return base, ok
}

// irregularForms returns the known inflections of an irregular base form,
// or nil if the word is not in the table.
func irregularForms(base string) []string {
	return baseToForms[base]
}
